package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/association"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles account provisioning and administration
type UserService struct {
	userRepo      identity.Repository
	assocRepo     association.Repository
	householdRepo household.Repository
	logger        *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo identity.Repository,
	assocRepo association.Repository,
	householdRepo household.Repository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		assocRepo:     assocRepo,
		householdRepo: householdRepo,
		logger:        logger,
	}
}

// CreateAdmin provisions an administrator account for an association
func (s *UserService) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*UserResponse, error) {
	if _, err := s.assocRepo.FindByID(ctx, req.AssociationID); err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.AssociationID, req.Email, req.Password, req.Name, identity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("admin account created",
		zap.String("user_id", user.ID.String()),
		zap.String("association_id", req.AssociationID.String()))

	return ToUserResponse(user), nil
}

// CreateResident creates a resident login account and links it to its
// household in both directions
func (s *UserService) CreateResident(ctx context.Context, associationID uuid.UUID, req CreateResidentRequest) (*UserResponse, error) {
	h, err := s.householdRepo.FindByID(ctx, associationID, req.HouseholdID)
	if err != nil {
		return nil, err
	}
	if h.UserID != nil {
		return nil, shared.NewDomainError("USER_ALREADY_LINKED", "Household already has a login account")
	}

	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	user, err := identity.NewUser(associationID, req.Email, req.Password, req.Name, identity.RoleResident)
	if err != nil {
		return nil, err
	}
	if err := user.LinkHousehold(req.HouseholdID); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if err := h.LinkUser(user.ID); err != nil {
		return nil, err
	}
	if err := s.householdRepo.Save(ctx, h); err != nil {
		return nil, err
	}

	s.logger.Info("resident account created",
		zap.String("user_id", user.ID.String()),
		zap.String("household_id", req.HouseholdID.String()))

	return ToUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// List retrieves the association's user accounts
func (s *UserService) List(ctx context.Context, associationID uuid.UUID, filter ListFilter) ([]UserResponse, int64, error) {
	domainFilter := identity.Filter{
		Filter: shared.DefaultFilter(),
		Role:   identity.Role(filter.Role),
		Status: identity.UserStatus(filter.Status),
	}
	domainFilter.Search = filter.Search
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	users, err := s.userRepo.FindByAssociation(ctx, associationID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx, associationID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *ToUserResponse(&users[i]))
	}

	return responses, total, nil
}

// ChangeEmail changes a user's login email
func (s *UserService) ChangeEmail(ctx context.Context, userID uuid.UUID, req ChangeEmailRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Email != req.NewEmail {
		if err := s.ensureEmailFree(ctx, req.NewEmail); err != nil {
			return nil, err
		}
	}

	if err := user.ChangeEmail(req.NewEmail); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("login email changed", zap.String("user_id", userID.String()))

	return ToUserResponse(user), nil
}

// ResetPassword sets a new password without checking the old one
func (s *UserService) ResetPassword(ctx context.Context, userID uuid.UUID, req ResetPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// Activate reactivates a user account
func (s *UserService) Activate(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	return s.changeStatus(ctx, userID, (*identity.User).Activate)
}

// Deactivate disables a user account
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	return s.changeStatus(ctx, userID, (*identity.User).Deactivate)
}

func (s *UserService) changeStatus(ctx context.Context, userID uuid.UUID, transition func(*identity.User) error) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := transition(user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	}
	return nil
}
