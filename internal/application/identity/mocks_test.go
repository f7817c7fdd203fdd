package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/association"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByAssociation(ctx context.Context, associationID uuid.UUID, filter identity.Filter) ([]identity.User, error) {
	args := m.Called(ctx, associationID, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, associationID uuid.UUID, filter identity.Filter) (int64, error) {
	args := m.Called(ctx, associationID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockAssociationRepository is a mock implementation of association.Repository
type MockAssociationRepository struct {
	mock.Mock
}

func (m *MockAssociationRepository) FindByID(ctx context.Context, id uuid.UUID) (*association.Association, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*association.Association), args.Error(1)
}

func (m *MockAssociationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]association.Association, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]association.Association), args.Error(1)
}

func (m *MockAssociationRepository) Save(ctx context.Context, assoc *association.Association) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}

func (m *MockAssociationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssociationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssociationRepository) Stats(ctx context.Context, id uuid.UUID) (*association.Stats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*association.Stats), args.Error(1)
}

// MockHouseholdRepository is a mock implementation of household.Repository
type MockHouseholdRepository struct {
	mock.Mock
}

func (m *MockHouseholdRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*household.Household, error) {
	args := m.Called(ctx, associationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*household.Household), args.Error(1)
}

func (m *MockHouseholdRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*household.Household, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*household.Household), args.Error(1)
}

func (m *MockHouseholdRepository) FindAll(ctx context.Context, associationID uuid.UUID, filter household.Filter) ([]household.Household, error) {
	args := m.Called(ctx, associationID, filter)
	return args.Get(0).([]household.Household), args.Error(1)
}

func (m *MockHouseholdRepository) FindActive(ctx context.Context, associationID uuid.UUID) ([]household.Household, error) {
	args := m.Called(ctx, associationID)
	return args.Get(0).([]household.Household), args.Error(1)
}

func (m *MockHouseholdRepository) Save(ctx context.Context, h *household.Household) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHouseholdRepository) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	args := m.Called(ctx, associationID, id)
	return args.Error(0)
}

func (m *MockHouseholdRepository) Count(ctx context.Context, associationID uuid.UUID, filter household.Filter) (int64, error) {
	args := m.Called(ctx, associationID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHouseholdRepository) ExistsByAddress(ctx context.Context, associationID uuid.UUID, block, houseNumber string) (bool, error) {
	args := m.Called(ctx, associationID, block, houseNumber)
	return args.Bool(0), args.Error(1)
}
