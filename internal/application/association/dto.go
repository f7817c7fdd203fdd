package association

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/association"
)

// CreateAssociationRequest provisions a new RT unit
type CreateAssociationRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=300"`
}

// UpdateAssociationRequest updates an RT unit's details
type UpdateAssociationRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=300"`
}

// AssociationResponse represents an association in API responses
type AssociationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatsResponse summarizes an association for the dashboard
type StatsResponse struct {
	AssociationID  uuid.UUID `json:"association_id"`
	HouseholdCount int64     `json:"household_count"`
	AdminCount     int64     `json:"admin_count"`
}

// ToAssociationResponse converts a domain association to a response DTO
func ToAssociationResponse(a *association.Association) *AssociationResponse {
	return &AssociationResponse{
		ID:        a.ID,
		Name:      a.Name,
		Address:   a.Address,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
