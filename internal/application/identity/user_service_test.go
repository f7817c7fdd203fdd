package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/association"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture() (*UserService, *MockUserRepository, *MockAssociationRepository, *MockHouseholdRepository) {
	userRepo := new(MockUserRepository)
	assocRepo := new(MockAssociationRepository)
	householdRepo := new(MockHouseholdRepository)
	service := NewUserService(userRepo, assocRepo, householdRepo, zap.NewNop())
	return service, userRepo, assocRepo, householdRepo
}

func TestUserService_CreateAdmin(t *testing.T) {
	service, userRepo, assocRepo, _ := newUserFixture()

	assoc, err := association.NewAssociation("RT 04", "Jl. Melati No. 1")
	require.NoError(t, err)

	assocRepo.On("FindByID", mock.Anything, assoc.ID).Return(assoc, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "admin@rt04.example.com").Return(false, nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.CreateAdmin(context.Background(), CreateAdminRequest{
		AssociationID: assoc.ID,
		Email:         "admin@rt04.example.com",
		Password:      "secret123",
		Name:          "Pak Budi",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.Role)
	require.NotNil(t, resp.AssociationID)
	assert.Equal(t, assoc.ID, *resp.AssociationID)
}

func TestUserService_CreateAdmin_EmailTaken(t *testing.T) {
	service, userRepo, assocRepo, _ := newUserFixture()

	assoc, err := association.NewAssociation("RT 04", "Jl. Melati No. 1")
	require.NoError(t, err)

	assocRepo.On("FindByID", mock.Anything, assoc.ID).Return(assoc, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "admin@rt04.example.com").Return(true, nil)

	_, err = service.CreateAdmin(context.Background(), CreateAdminRequest{
		AssociationID: assoc.ID,
		Email:         "admin@rt04.example.com",
		Password:      "secret123",
		Name:          "Pak Budi",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_CreateAdmin_UnknownAssociation(t *testing.T) {
	service, _, assocRepo, _ := newUserFixture()
	assocID := uuid.New()

	assocRepo.On("FindByID", mock.Anything, assocID).Return(nil, shared.ErrNotFound)

	_, err := service.CreateAdmin(context.Background(), CreateAdminRequest{
		AssociationID: assocID,
		Email:         "admin@rt04.example.com",
		Password:      "secret123",
		Name:          "Pak Budi",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserService_CreateResident_LinksBothWays(t *testing.T) {
	service, userRepo, _, householdRepo := newUserFixture()
	assocID := uuid.New()

	h, err := household.NewHousehold(assocID, "Budi Santoso", "A", "12", "", "")
	require.NoError(t, err)

	householdRepo.On("FindByID", mock.Anything, assocID, h.ID).Return(h, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "budi@example.com").Return(false, nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	householdRepo.On("Save", mock.Anything, h).Return(nil)

	resp, err := service.CreateResident(context.Background(), assocID, CreateResidentRequest{
		HouseholdID: h.ID,
		Email:       "budi@example.com",
		Password:    "secret123",
		Name:        "Budi Santoso",
	})
	require.NoError(t, err)

	assert.Equal(t, "warga", resp.Role)
	require.NotNil(t, resp.HouseholdID)
	assert.Equal(t, h.ID, *resp.HouseholdID)

	require.NotNil(t, h.UserID)
	assert.Equal(t, resp.ID, *h.UserID)
}

func TestUserService_CreateResident_HouseholdAlreadyLinked(t *testing.T) {
	service, userRepo, _, householdRepo := newUserFixture()
	assocID := uuid.New()

	h, err := household.NewHousehold(assocID, "Budi Santoso", "A", "12", "", "")
	require.NoError(t, err)
	require.NoError(t, h.LinkUser(uuid.New()))

	householdRepo.On("FindByID", mock.Anything, assocID, h.ID).Return(h, nil)

	_, err = service.CreateResident(context.Background(), assocID, CreateResidentRequest{
		HouseholdID: h.ID,
		Email:       "budi@example.com",
		Password:    "secret123",
		Name:        "Budi Santoso",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "USER_ALREADY_LINKED", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_ChangeEmail(t *testing.T) {
	service, userRepo, _, _ := newUserFixture()

	user, err := identity.NewUser(uuid.New(), "old@example.com", "secret123", "Budi", identity.RoleResident)
	require.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	resp, err := service.ChangeEmail(context.Background(), user.ID, ChangeEmailRequest{NewEmail: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
}

func TestUserService_ChangeEmail_Taken(t *testing.T) {
	service, userRepo, _, _ := newUserFixture()

	user, err := identity.NewUser(uuid.New(), "old@example.com", "secret123", "Budi", identity.RoleResident)
	require.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, err = service.ChangeEmail(context.Background(), user.ID, ChangeEmailRequest{NewEmail: "taken@example.com"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestUserService_Deactivate(t *testing.T) {
	service, userRepo, _, _ := newUserFixture()

	user, err := identity.NewUser(uuid.New(), "a@b.com", "secret123", "Budi", identity.RoleResident)
	require.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	resp, err := service.Deactivate(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "deactivated", resp.Status)
}
