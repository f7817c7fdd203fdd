package household

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// HouseholdService handles household management operations
type HouseholdService struct {
	householdRepo household.Repository
}

// NewHouseholdService creates a new HouseholdService
func NewHouseholdService(householdRepo household.Repository) *HouseholdService {
	return &HouseholdService{householdRepo: householdRepo}
}

// Create registers a new household
func (s *HouseholdService) Create(ctx context.Context, associationID uuid.UUID, req CreateHouseholdRequest) (*HouseholdResponse, error) {
	exists, err := s.householdRepo.ExistsByAddress(ctx, associationID, req.Block, req.HouseNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A household already occupies this address")
	}

	h, err := household.NewHousehold(associationID, req.HeadName, req.Block, req.HouseNumber, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.householdRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	return ToHouseholdResponse(h), nil
}

// GetByID retrieves a household by ID
func (s *HouseholdService) GetByID(ctx context.Context, associationID, id uuid.UUID) (*HouseholdResponse, error) {
	h, err := s.householdRepo.FindByID(ctx, associationID, id)
	if err != nil {
		return nil, err
	}

	return ToHouseholdResponse(h), nil
}

// GetByUser retrieves the household linked to a resident account
func (s *HouseholdService) GetByUser(ctx context.Context, userID uuid.UUID) (*HouseholdResponse, error) {
	h, err := s.householdRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToHouseholdResponse(h), nil
}

// List retrieves the association's households
func (s *HouseholdService) List(ctx context.Context, associationID uuid.UUID, filter ListFilter) ([]HouseholdResponse, int64, error) {
	domainFilter := household.Filter{
		Filter: shared.DefaultFilter(),
		Status: household.Status(filter.Status),
		Block:  filter.Block,
	}
	domainFilter.Search = filter.Search
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	households, err := s.householdRepo.FindAll(ctx, associationID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.householdRepo.Count(ctx, associationID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]HouseholdResponse, 0, len(households))
	for i := range households {
		responses = append(responses, *ToHouseholdResponse(&households[i]))
	}

	return responses, total, nil
}

// Update updates a household's profile and contact details
func (s *HouseholdService) Update(ctx context.Context, associationID, id uuid.UUID, req UpdateHouseholdRequest) (*HouseholdResponse, error) {
	h, err := s.householdRepo.FindByID(ctx, associationID, id)
	if err != nil {
		return nil, err
	}

	if h.Block != req.Block || h.HouseNumber != req.HouseNumber {
		exists, err := s.householdRepo.ExistsByAddress(ctx, associationID, req.Block, req.HouseNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A household already occupies this address")
		}
	}

	if err := h.UpdateProfile(req.HeadName, req.Block, req.HouseNumber); err != nil {
		return nil, err
	}
	h.UpdateContact(req.Email, req.Phone)

	if err := s.householdRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	return ToHouseholdResponse(h), nil
}

// Activate marks a household as occupied
func (s *HouseholdService) Activate(ctx context.Context, associationID, id uuid.UUID) (*HouseholdResponse, error) {
	return s.changeStatus(ctx, associationID, id, (*household.Household).Activate)
}

// Deactivate marks a household as vacant, excluding it from future
// bill generation
func (s *HouseholdService) Deactivate(ctx context.Context, associationID, id uuid.UUID) (*HouseholdResponse, error) {
	return s.changeStatus(ctx, associationID, id, (*household.Household).Deactivate)
}

func (s *HouseholdService) changeStatus(ctx context.Context, associationID, id uuid.UUID, transition func(*household.Household) error) (*HouseholdResponse, error) {
	h, err := s.householdRepo.FindByID(ctx, associationID, id)
	if err != nil {
		return nil, err
	}

	if err := transition(h); err != nil {
		return nil, err
	}

	if err := s.householdRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	return ToHouseholdResponse(h), nil
}

// LinkUser attaches a resident login account to a household
func (s *HouseholdService) LinkUser(ctx context.Context, associationID, id, userID uuid.UUID) (*HouseholdResponse, error) {
	h, err := s.householdRepo.FindByID(ctx, associationID, id)
	if err != nil {
		return nil, err
	}

	if err := h.LinkUser(userID); err != nil {
		return nil, err
	}

	if err := s.householdRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	return ToHouseholdResponse(h), nil
}

// Delete removes a household. Deactivation is the normal path; delete
// is exposed for records created by mistake.
func (s *HouseholdService) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	if _, err := s.householdRepo.FindByID(ctx, associationID, id); err != nil {
		return err
	}

	return s.householdRepo.Delete(ctx, associationID, id)
}
