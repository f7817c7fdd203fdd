package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/ledger"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/roronge/iuran04/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSettlementStore implements dues.SettlementStore using GORM.
// The status flip and the ledger insert commit as one transaction, and
// the flip carries a status guard so a bill settles at most once even
// under concurrent requests.
type GormSettlementStore struct {
	db *gorm.DB
}

// NewGormSettlementStore creates a new GormSettlementStore
func NewGormSettlementStore(db *gorm.DB) *GormSettlementStore {
	return &GormSettlementStore{db: db}
}

// Settle marks the bill paid and records the matching income entry
func (s *GormSettlementStore) Settle(ctx context.Context, associationID, billID uuid.UUID, paidAt time.Time, description string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.BillModel{}).
			Where("id = ? AND association_id = ? AND status = ?",
				billID, associationID, dues.BillStatusUnpaid).
			Updates(map[string]interface{}{
				"status":     dues.BillStatusPaid,
				"paid_at":    paidAt,
				"updated_at": time.Now(),
				"version":    gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Distinguish a missing bill from one already settled
			var bill models.BillModel
			err := tx.First(&bill, "id = ? AND association_id = ?", billID, associationID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			if err != nil {
				return err
			}
			return shared.ErrInvalidState
		}

		var bill models.BillModel
		if err := tx.First(&bill, "id = ?", billID).Error; err != nil {
			return err
		}

		entry, err := ledger.NewSettlementEntry(associationID, billID, paidAt,
			description, valueobject.NewMoneyIDR(bill.Amount))
		if err != nil {
			return err
		}
		return tx.Create(models.LedgerEntryModelFromDomain(entry)).Error
	})
}

var _ dues.SettlementStore = (*GormSettlementStore)(nil)
