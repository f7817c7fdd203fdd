package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/ledger"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, associationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func (m *MockLedgerRepository) FindAll(ctx context.Context, associationID uuid.UUID, filter ledger.Filter) ([]ledger.Entry, error) {
	args := m.Called(ctx, associationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	args := m.Called(ctx, associationID, id)
	return args.Error(0)
}

func (m *MockLedgerRepository) Count(ctx context.Context, associationID uuid.UUID, filter ledger.Filter) (int64, error) {
	args := m.Called(ctx, associationID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) Balance(ctx context.Context, associationID uuid.UUID) (valueobject.Money, error) {
	args := m.Called(ctx, associationID)
	return args.Get(0).(valueobject.Money), args.Error(1)
}

func TestLedgerService_CreateEntry(t *testing.T) {
	repo := new(MockLedgerRepository)
	service := NewLedgerService(repo)
	assocID := uuid.New()

	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.CreateEntry(context.Background(), assocID, CreateEntryRequest{
		Description: "Beli alat kebersihan",
		Direction:   "out",
		Amount:      decimal.NewFromInt(150000),
	})
	require.NoError(t, err)

	assert.Equal(t, "out", resp.Direction)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(150000)))
	assert.Nil(t, resp.BillID)
	assert.False(t, resp.Date.IsZero())
}

func TestLedgerService_CreateEntry_NegativeAmount(t *testing.T) {
	repo := new(MockLedgerRepository)
	service := NewLedgerService(repo)

	_, err := service.CreateEntry(context.Background(), uuid.New(), CreateEntryRequest{
		Description: "Salah input",
		Direction:   "in",
		Amount:      decimal.NewFromInt(-5000),
	})
	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLedgerService_Delete_ManualEntry(t *testing.T) {
	repo := new(MockLedgerRepository)
	service := NewLedgerService(repo)
	assocID := uuid.New()

	entry, err := ledger.NewManualEntry(assocID, time.Now(), "Beli cat pos ronda", ledger.DirectionOut, valueobject.NewMoneyIDRFromInt(75000))
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, assocID, entry.ID).Return(entry, nil)
	repo.On("Delete", mock.Anything, assocID, entry.ID).Return(nil)

	require.NoError(t, service.Delete(context.Background(), assocID, entry.ID))
	repo.AssertExpectations(t)
}

func TestLedgerService_Delete_SettlementEntryForbidden(t *testing.T) {
	repo := new(MockLedgerRepository)
	service := NewLedgerService(repo)
	assocID := uuid.New()

	entry, err := ledger.NewSettlementEntry(assocID, uuid.New(), time.Now(), "Pembayaran Kebersihan - Budi Santoso", valueobject.NewMoneyIDRFromInt(50000))
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, assocID, entry.ID).Return(entry, nil)

	err = service.Delete(context.Background(), assocID, entry.ID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService_Balance(t *testing.T) {
	repo := new(MockLedgerRepository)
	service := NewLedgerService(repo)
	assocID := uuid.New()

	repo.On("Balance", mock.Anything, assocID).Return(valueobject.NewMoneyIDRFromInt(325000), nil)

	resp, err := service.Balance(context.Background(), assocID)
	require.NoError(t, err)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(325000)))
}

func TestLedgerService_List(t *testing.T) {
	repo := new(MockLedgerRepository)
	service := NewLedgerService(repo)
	assocID := uuid.New()

	in, err := ledger.NewManualEntry(assocID, time.Now(), "Sumbangan warga", ledger.DirectionIn, valueobject.NewMoneyIDRFromInt(200000))
	require.NoError(t, err)
	out, err := ledger.NewManualEntry(assocID, time.Now(), "Konsumsi rapat", ledger.DirectionOut, valueobject.NewMoneyIDRFromInt(80000))
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, assocID, mock.Anything).Return([]ledger.Entry{*in, *out}, nil)
	repo.On("Count", mock.Anything, assocID, mock.Anything).Return(int64(2), nil)

	entries, total, err := service.List(context.Background(), assocID, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)
	assert.Equal(t, "in", entries[0].Direction)
	assert.Equal(t, "out", entries[1].Direction)
}
