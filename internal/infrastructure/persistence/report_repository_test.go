package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormReportRepository_CategoryRecap(t *testing.T) {
	db := setupTestDB(t)
	reportRepo := NewGormReportRepository(db)
	billRepo := NewGormBillRepository(db)
	categoryRepo := NewGormCategoryRepository(db)
	store := NewGormSettlementStore(db)
	ctx := context.Background()

	associationID := uuid.New()
	kebersihan := mustCategory(t, associationID, "Iuran Kebersihan", 25000)
	keamanan := mustCategory(t, associationID, "Iuran Keamanan", 50000)
	require.NoError(t, categoryRepo.Save(ctx, kebersihan))
	require.NoError(t, categoryRepo.Save(ctx, keamanan))

	h1 := mustHousehold(t, associationID, "Budi Santoso", "A", "1")
	h2 := mustHousehold(t, associationID, "Siti Rahayu", "A", "2")

	period := dues.Period{Month: 3, Year: 2025}
	bills := []dues.Bill{
		*mustBill(t, associationID, h1.ID, kebersihan.ID, period, 25000),
		*mustBill(t, associationID, h2.ID, kebersihan.ID, period, 25000),
		*mustBill(t, associationID, h1.ID, keamanan.ID, period, 50000),
		*mustBill(t, associationID, h2.ID, keamanan.ID, period, 50000),
	}
	_, err := billRepo.InsertIfAbsent(ctx, bills)
	require.NoError(t, err)

	// Settle one kebersihan bill and both keamanan bills
	require.NoError(t, store.Settle(ctx, associationID, bills[0].ID, time.Now(), "Pembayaran"))
	require.NoError(t, store.Settle(ctx, associationID, bills[2].ID, time.Now(), "Pembayaran"))
	require.NoError(t, store.Settle(ctx, associationID, bills[3].ID, time.Now(), "Pembayaran"))

	recaps, err := reportRepo.CategoryRecap(ctx, associationID, period)
	require.NoError(t, err)
	require.Len(t, recaps, 2)

	// Ordered by category name
	keb := recaps[0]
	assert.Equal(t, "Iuran Kebersihan", keb.CategoryName)
	assert.Equal(t, int64(2), keb.BillCount)
	assert.Equal(t, int64(1), keb.PaidCount)
	assert.True(t, keb.TotalBilled.Amount().Equal(decimal.NewFromInt(50000)))
	assert.True(t, keb.TotalPaid.Amount().Equal(decimal.NewFromInt(25000)))

	keam := recaps[1]
	assert.Equal(t, "Iuran Keamanan", keam.CategoryName)
	assert.Equal(t, int64(2), keam.BillCount)
	assert.Equal(t, int64(2), keam.PaidCount)
	assert.True(t, keam.TotalBilled.Amount().Equal(decimal.NewFromInt(100000)))
	assert.True(t, keam.TotalPaid.Amount().Equal(decimal.NewFromInt(100000)))
}

func TestGormReportRepository_CategoryRecap_EmptyPeriod(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormReportRepository(db)

	recaps, err := repo.CategoryRecap(context.Background(), uuid.New(), dues.Period{Month: 1, Year: 2025})
	require.NoError(t, err)
	assert.Empty(t, recaps)
}

func TestGormReportRepository_CategoryRecap_ScopedToPeriod(t *testing.T) {
	db := setupTestDB(t)
	reportRepo := NewGormReportRepository(db)
	billRepo := NewGormBillRepository(db)
	categoryRepo := NewGormCategoryRepository(db)
	ctx := context.Background()

	associationID := uuid.New()
	cat := mustCategory(t, associationID, "Iuran Kebersihan", 25000)
	require.NoError(t, categoryRepo.Save(ctx, cat))
	h := mustHousehold(t, associationID, "Budi Santoso", "A", "1")

	_, err := billRepo.InsertIfAbsent(ctx, []dues.Bill{
		*mustBill(t, associationID, h.ID, cat.ID, dues.Period{Month: 3, Year: 2025}, 25000),
		*mustBill(t, associationID, h.ID, cat.ID, dues.Period{Month: 4, Year: 2025}, 25000),
	})
	require.NoError(t, err)

	recaps, err := reportRepo.CategoryRecap(ctx, associationID, dues.Period{Month: 3, Year: 2025})
	require.NoError(t, err)
	require.Len(t, recaps, 1)
	assert.Equal(t, int64(1), recaps[0].BillCount)
}
