package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// billLineSelect lists the columns of the bill read model. Bills are
// always shown with the household and category they belong to, so the
// display fields are joined in here instead of looked up per row.
const billLineSelect = "bills.id, bills.household_id, bills.category_id, " +
	"households.head_name, households.block, households.house_number, " +
	"dues_categories.name AS category_name, " +
	"bills.month, bills.year, bills.amount, bills.status, bills.paid_at"

// GormBillRepository implements dues.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// FindByID finds a bill by ID within an association
func (r *GormBillRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*dues.Bill, error) {
	var model models.BillModel
	err := r.db.WithContext(ctx).
		First(&model, "id = ? AND association_id = ?", id, associationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindLineByID finds one bill with its display fields
func (r *GormBillRepository) FindLineByID(ctx context.Context, associationID, id uuid.UUID) (*dues.BillingLine, error) {
	var row models.BillLineRow
	result := r.lineQuery(ctx).
		Where("bills.id = ? AND bills.association_id = ?", id, associationID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	line := row.ToBillingLine()
	return &line, nil
}

// FindLinesByPeriod finds all bills for a period with display fields
func (r *GormBillRepository) FindLinesByPeriod(ctx context.Context, associationID uuid.UUID, period dues.Period) ([]dues.BillingLine, error) {
	var rows []models.BillLineRow
	err := r.lineQuery(ctx).
		Where("bills.association_id = ? AND bills.month = ? AND bills.year = ?",
			associationID, period.Month, period.Year).
		Order("households.block ASC, households.house_number ASC, dues_categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toBillingLines(rows), nil
}

// FindLinesByHousehold finds a household's bills with display fields,
// newest period first
func (r *GormBillRepository) FindLinesByHousehold(ctx context.Context, associationID, householdID uuid.UUID) ([]dues.BillingLine, error) {
	var rows []models.BillLineRow
	err := r.lineQuery(ctx).
		Where("bills.association_id = ? AND bills.household_id = ?", associationID, householdID).
		Order("bills.year DESC, bills.month DESC, dues_categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toBillingLines(rows), nil
}

// InsertIfAbsent bulk-inserts bills, skipping any whose unique
// (association, household, category, month, year) tuple already
// exists. Returns the number of rows actually created.
func (r *GormBillRepository) InsertIfAbsent(ctx context.Context, bills []dues.Bill) (int, error) {
	if len(bills) == 0 {
		return 0, nil
	}

	billModels := make([]models.BillModel, len(bills))
	for i := range bills {
		billModels[i] = *models.BillModelFromDomain(&bills[i])
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&billModels)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *GormBillRepository) lineQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bills").
		Select(billLineSelect).
		Joins("JOIN households ON households.id = bills.household_id").
		Joins("JOIN dues_categories ON dues_categories.id = bills.category_id")
}

func toBillingLines(rows []models.BillLineRow) []dues.BillingLine {
	lines := make([]dues.BillingLine, len(rows))
	for i := range rows {
		lines[i] = rows[i].ToBillingLine()
	}
	return lines
}

var _ dues.BillRepository = (*GormBillRepository)(nil)
