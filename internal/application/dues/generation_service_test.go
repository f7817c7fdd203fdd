package dues

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGenerationFixture() (*GenerationService, *MockBillRepository, *MockCategoryRepository, *MockHouseholdRepository, *MockEventPublisher) {
	billRepo := new(MockBillRepository)
	categoryRepo := new(MockCategoryRepository)
	householdRepo := new(MockHouseholdRepository)
	events := new(MockEventPublisher)
	service := NewGenerationService(billRepo, categoryRepo, householdRepo, events, zap.NewNop())
	return service, billRepo, categoryRepo, householdRepo, events
}

func activeHousehold(t *testing.T, assocID uuid.UUID, headName string) household.Household {
	t.Helper()
	h, err := household.NewHousehold(assocID, headName, "A", "1", "", "")
	require.NoError(t, err)
	return *h
}

func category(t *testing.T, assocID uuid.UUID, name string, amount int64) dues.Category {
	t.Helper()
	c, err := dues.NewCategory(assocID, name, valueobject.NewMoneyIDRFromInt(amount), "")
	require.NoError(t, err)
	return *c
}

func TestGenerationService_Generate(t *testing.T) {
	service, billRepo, categoryRepo, householdRepo, events := newGenerationFixture()
	assocID := uuid.New()

	households := []household.Household{
		activeHousehold(t, assocID, "Budi"),
		activeHousehold(t, assocID, "Siti"),
	}
	categories := []dues.Category{
		category(t, assocID, "Kebersihan", 50000),
		category(t, assocID, "Keamanan", 75000),
	}

	householdRepo.On("FindActive", mock.Anything, assocID).Return(households, nil)
	categoryRepo.On("ListAll", mock.Anything, assocID).Return(categories, nil)
	billRepo.On("InsertIfAbsent", mock.Anything, mock.MatchedBy(func(bills []dues.Bill) bool {
		return len(bills) == 4
	})).Return(4, nil)
	events.On("Publish", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Generate(context.Background(), assocID, GenerateBillsRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Requested)
	assert.Equal(t, 4, result.Created)
	assert.Equal(t, 0, result.Skipped)
	events.AssertNumberOfCalls(t, "Publish", 1)
}

func TestGenerationService_Generate_SecondRunSkipsExisting(t *testing.T) {
	service, billRepo, categoryRepo, householdRepo, events := newGenerationFixture()
	assocID := uuid.New()

	householdRepo.On("FindActive", mock.Anything, assocID).
		Return([]household.Household{activeHousehold(t, assocID, "Budi")}, nil)
	categoryRepo.On("ListAll", mock.Anything, assocID).
		Return([]dues.Category{category(t, assocID, "Kebersihan", 50000)}, nil)
	// Everything already exists; the store creates nothing.
	billRepo.On("InsertIfAbsent", mock.Anything, mock.Anything).Return(0, nil)

	result, err := service.Generate(context.Background(), assocID, GenerateBillsRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Requested)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Skipped)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGenerationService_Generate_NothingToGenerate(t *testing.T) {
	service, billRepo, categoryRepo, householdRepo, _ := newGenerationFixture()
	assocID := uuid.New()

	householdRepo.On("FindActive", mock.Anything, assocID).Return([]household.Household{}, nil)
	categoryRepo.On("ListAll", mock.Anything, assocID).
		Return([]dues.Category{category(t, assocID, "Kebersihan", 50000)}, nil)

	_, err := service.Generate(context.Background(), assocID, GenerateBillsRequest{Month: 3, Year: 2025})
	assert.ErrorIs(t, err, dues.ErrNothingToGenerate)
	billRepo.AssertNotCalled(t, "InsertIfAbsent", mock.Anything, mock.Anything)
}

func TestGenerationService_Generate_InvalidPeriod(t *testing.T) {
	service, _, _, _, _ := newGenerationFixture()

	_, err := service.Generate(context.Background(), uuid.New(), GenerateBillsRequest{Month: 0, Year: 2025})
	assert.Error(t, err)
}
