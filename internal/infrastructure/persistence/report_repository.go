package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/report"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements report.Repository using GORM.
// Recaps aggregate in SQL; the bill rows never reach Go.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

type categoryRecapRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	BillCount    int64
	PaidCount    int64
	TotalBilled  decimal.Decimal
	TotalPaid    decimal.Decimal
}

// CategoryRecap aggregates bills per category for one period
func (r *GormReportRepository) CategoryRecap(ctx context.Context, associationID uuid.UUID, period dues.Period) ([]report.CategoryRecap, error) {
	var rows []categoryRecapRow
	err := r.db.WithContext(ctx).
		Table("bills").
		Select("dues_categories.id AS category_id, "+
			"dues_categories.name AS category_name, "+
			"COUNT(bills.id) AS bill_count, "+
			"COALESCE(SUM(CASE WHEN bills.status = ? THEN 1 ELSE 0 END), 0) AS paid_count, "+
			"COALESCE(SUM(bills.amount), 0) AS total_billed, "+
			"COALESCE(SUM(CASE WHEN bills.status = ? THEN bills.amount ELSE 0 END), 0) AS total_paid",
			dues.BillStatusPaid, dues.BillStatusPaid).
		Joins("JOIN dues_categories ON dues_categories.id = bills.category_id").
		Where("bills.association_id = ? AND bills.month = ? AND bills.year = ?",
			associationID, period.Month, period.Year).
		Group("dues_categories.id, dues_categories.name").
		Order("dues_categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	recaps := make([]report.CategoryRecap, len(rows))
	for i, row := range rows {
		recaps[i] = report.CategoryRecap{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			BillCount:    row.BillCount,
			PaidCount:    row.PaidCount,
			TotalBilled:  valueobject.NewMoneyIDR(row.TotalBilled),
			TotalPaid:    valueobject.NewMoneyIDR(row.TotalPaid),
		}
	}
	return recaps, nil
}

var _ report.Repository = (*GormReportRepository)(nil)
