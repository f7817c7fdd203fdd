package dues

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of dues.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*dues.Category, error) {
	args := m.Called(ctx, associationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dues.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, associationID uuid.UUID, filter shared.Filter) ([]dues.Category, error) {
	args := m.Called(ctx, associationID, filter)
	return args.Get(0).([]dues.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListAll(ctx context.Context, associationID uuid.UUID) ([]dues.Category, error) {
	args := m.Called(ctx, associationID)
	return args.Get(0).([]dues.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *dues.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	args := m.Called(ctx, associationID, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context, associationID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, associationID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockBillRepository is a mock implementation of dues.BillRepository
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*dues.Bill, error) {
	args := m.Called(ctx, associationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dues.Bill), args.Error(1)
}

func (m *MockBillRepository) FindLineByID(ctx context.Context, associationID, id uuid.UUID) (*dues.BillingLine, error) {
	args := m.Called(ctx, associationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dues.BillingLine), args.Error(1)
}

func (m *MockBillRepository) FindLinesByPeriod(ctx context.Context, associationID uuid.UUID, period dues.Period) ([]dues.BillingLine, error) {
	args := m.Called(ctx, associationID, period)
	return args.Get(0).([]dues.BillingLine), args.Error(1)
}

func (m *MockBillRepository) FindLinesByHousehold(ctx context.Context, associationID, householdID uuid.UUID) ([]dues.BillingLine, error) {
	args := m.Called(ctx, associationID, householdID)
	return args.Get(0).([]dues.BillingLine), args.Error(1)
}

func (m *MockBillRepository) InsertIfAbsent(ctx context.Context, bills []dues.Bill) (int, error) {
	args := m.Called(ctx, bills)
	return args.Int(0), args.Error(1)
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

// MockSettlementStore is a mock implementation of dues.SettlementStore
type MockSettlementStore struct {
	mock.Mock
}

func (m *MockSettlementStore) Settle(ctx context.Context, associationID, billID uuid.UUID, paidAt time.Time, description string) error {
	args := m.Called(ctx, associationID, billID, paidAt, description)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
