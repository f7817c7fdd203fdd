package association

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/association"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// AssociationService handles RT provisioning, a super-admin concern
type AssociationService struct {
	assocRepo association.Repository
}

// NewAssociationService creates a new AssociationService
func NewAssociationService(assocRepo association.Repository) *AssociationService {
	return &AssociationService{assocRepo: assocRepo}
}

// Create provisions a new association
func (s *AssociationService) Create(ctx context.Context, req CreateAssociationRequest) (*AssociationResponse, error) {
	assoc, err := association.NewAssociation(req.Name, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.assocRepo.Save(ctx, assoc); err != nil {
		return nil, err
	}

	return ToAssociationResponse(assoc), nil
}

// GetByID retrieves an association by ID
func (s *AssociationService) GetByID(ctx context.Context, id uuid.UUID) (*AssociationResponse, error) {
	assoc, err := s.assocRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToAssociationResponse(assoc), nil
}

// List retrieves all associations
func (s *AssociationService) List(ctx context.Context, filter shared.Filter) ([]AssociationResponse, int64, error) {
	associations, err := s.assocRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.assocRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AssociationResponse, 0, len(associations))
	for i := range associations {
		responses = append(responses, *ToAssociationResponse(&associations[i]))
	}

	return responses, total, nil
}

// Update updates an association's details
func (s *AssociationService) Update(ctx context.Context, id uuid.UUID, req UpdateAssociationRequest) (*AssociationResponse, error) {
	assoc, err := s.assocRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := assoc.UpdateInfo(req.Name, req.Address); err != nil {
		return nil, err
	}

	if err := s.assocRepo.Save(ctx, assoc); err != nil {
		return nil, err
	}

	return ToAssociationResponse(assoc), nil
}

// Activate marks an association as active again
func (s *AssociationService) Activate(ctx context.Context, id uuid.UUID) (*AssociationResponse, error) {
	assoc, err := s.assocRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := assoc.Activate(); err != nil {
		return nil, err
	}

	if err := s.assocRepo.Save(ctx, assoc); err != nil {
		return nil, err
	}

	return ToAssociationResponse(assoc), nil
}

// Deactivate marks an association as inactive
func (s *AssociationService) Deactivate(ctx context.Context, id uuid.UUID) (*AssociationResponse, error) {
	assoc, err := s.assocRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := assoc.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.assocRepo.Save(ctx, assoc); err != nil {
		return nil, err
	}

	return ToAssociationResponse(assoc), nil
}

// Stats returns an association's household and admin counts
func (s *AssociationService) Stats(ctx context.Context, id uuid.UUID) (*StatsResponse, error) {
	stats, err := s.assocRepo.Stats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		AssociationID:  stats.AssociationID,
		HouseholdCount: stats.HouseholdCount,
		AdminCount:     stats.AdminCount,
	}, nil
}
