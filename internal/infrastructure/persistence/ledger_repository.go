package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/ledger"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/roronge/iuran04/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedgerRepository implements ledger.Repository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// FindByID finds an entry by ID within an association
func (r *GormLedgerRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*ledger.Entry, error) {
	var model models.LedgerEntryModel
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

// FindAll finds entries in an association with filtering, newest first
func (r *GormLedgerRepository) FindAll(ctx context.Context, associationID uuid.UUID, filter ledger.Filter) ([]ledger.Entry, error) {
	var entryModels []models.LedgerEntryModel

	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.LedgerEntryModel{}), associationID, filter)
	query = query.Order(orderClauseFor(filter.Filter, LedgerSortFields, "date")).
		Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, err
	}

	result := make([]ledger.Entry, len(entryModels))
	for i := range entryModels {
		result[i] = *entryModels[i].ToDomain()
	}
	return result, nil
}

// Save creates or updates an entry
func (r *GormLedgerRepository) Save(ctx context.Context, entry *ledger.Entry) error {
	model := models.LedgerEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an entry
func (r *GormLedgerRepository) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.LedgerEntryModel{}, "id = ? AND association_id = ?", id, associationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts entries matching the filter
func (r *GormLedgerRepository) Count(ctx context.Context, associationID uuid.UUID, filter ledger.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.LedgerEntryModel{}), associationID, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Balance computes the signed sum of all entries in the association.
// Income counts positive, expenses negative.
func (r *GormLedgerRepository) Balance(ctx context.Context, associationID uuid.UUID) (valueobject.Money, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.LedgerEntryModel{}).
		Select("COALESCE(SUM(CASE WHEN direction = ? THEN amount ELSE -amount END), 0) AS total",
			ledger.DirectionIn).
		Where("association_id = ?", associationID).
		Scan(&row).Error
	if err != nil {
		return valueobject.ZeroIDR(), err
	}
	return valueobject.NewMoneyIDR(row.Total), nil
}

func (r *GormLedgerRepository) applyFilter(query *gorm.DB, associationID uuid.UUID, filter ledger.Filter) *gorm.DB {
	query = query.Where("association_id = ?", associationID)
	if filter.Direction != "" {
		query = query.Where("direction = ?", filter.Direction)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.Search != "" {
		query = query.Where("description LIKE ?", "%"+filter.Search+"%")
	}
	return query
}

var _ ledger.Repository = (*GormLedgerRepository)(nil)
