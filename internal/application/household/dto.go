package household

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/household"
)

// CreateHouseholdRequest represents a request to register a household
type CreateHouseholdRequest struct {
	HeadName    string `json:"head_name" binding:"required,min=1,max=150"`
	Block       string `json:"block" binding:"max=20"`
	HouseNumber string `json:"house_number" binding:"required,min=1,max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Phone       string `json:"phone" binding:"omitempty,idphone"`
}

// UpdateHouseholdRequest represents a request to update a household
type UpdateHouseholdRequest struct {
	HeadName    string `json:"head_name" binding:"required,min=1,max=150"`
	Block       string `json:"block" binding:"max=20"`
	HouseNumber string `json:"house_number" binding:"required,min=1,max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Phone       string `json:"phone" binding:"omitempty,idphone"`
}

// ListFilter carries the household list query parameters
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Status   string `form:"status"`
	Block    string `form:"block"`
}

// HouseholdResponse represents a household in API responses
type HouseholdResponse struct {
	ID          uuid.UUID  `json:"id"`
	HeadName    string     `json:"head_name"`
	Block       string     `json:"block"`
	HouseNumber string     `json:"house_number"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Status      string     `json:"status"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToHouseholdResponse converts a domain household to a response DTO
func ToHouseholdResponse(h *household.Household) *HouseholdResponse {
	return &HouseholdResponse{
		ID:          h.ID,
		HeadName:    h.HeadName,
		Block:       h.Block,
		HouseNumber: h.HouseNumber,
		Email:       h.Email,
		Phone:       h.Phone,
		Status:      string(h.Status),
		UserID:      h.UserID,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
