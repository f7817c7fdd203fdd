package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormHouseholdRepository implements household.Repository using GORM
type GormHouseholdRepository struct {
	db *gorm.DB
}

// NewGormHouseholdRepository creates a new GormHouseholdRepository
func NewGormHouseholdRepository(db *gorm.DB) *GormHouseholdRepository {
	return &GormHouseholdRepository{db: db}
}

// FindByID finds a household by ID within an association
func (r *GormHouseholdRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*household.Household, error) {
	var model models.HouseholdModel
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

// FindByUserID finds the household linked to a user account
func (r *GormHouseholdRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*household.Household, error) {
	var model models.HouseholdModel
	if err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds households in an association with filtering
func (r *GormHouseholdRepository) FindAll(ctx context.Context, associationID uuid.UUID, filter household.Filter) ([]household.Household, error) {
	var householdModels []models.HouseholdModel

	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.HouseholdModel{}), associationID, filter)
	query = query.Order(orderClauseFor(filter.Filter, HouseholdSortFields, "created_at")).
		Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&householdModels).Error; err != nil {
		return nil, err
	}

	result := make([]household.Household, len(householdModels))
	for i := range householdModels {
		result[i] = *householdModels[i].ToDomain()
	}
	return result, nil
}

// FindActive finds all active households in an association
func (r *GormHouseholdRepository) FindActive(ctx context.Context, associationID uuid.UUID) ([]household.Household, error) {
	var householdModels []models.HouseholdModel
	err := r.db.WithContext(ctx).
		Where("association_id = ? AND status = ?", associationID, household.StatusActive).
		Order("block ASC, house_number ASC").
		Find(&householdModels).Error
	if err != nil {
		return nil, err
	}

	result := make([]household.Household, len(householdModels))
	for i := range householdModels {
		result[i] = *householdModels[i].ToDomain()
	}
	return result, nil
}

// Save creates or updates a household
func (r *GormHouseholdRepository) Save(ctx context.Context, h *household.Household) error {
	model := models.HouseholdModelFromDomain(h)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a household
func (r *GormHouseholdRepository) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.HouseholdModel{}, "id = ? AND association_id = ?", id, associationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts households matching the filter
func (r *GormHouseholdRepository) Count(ctx context.Context, associationID uuid.UUID, filter household.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.HouseholdModel{}), associationID, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByAddress reports whether a household already occupies the
// block and house number within the association
func (r *GormHouseholdRepository) ExistsByAddress(ctx context.Context, associationID uuid.UUID, block, houseNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.HouseholdModel{}).
		Where("association_id = ? AND block = ? AND house_number = ?", associationID, block, houseNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormHouseholdRepository) applyFilter(query *gorm.DB, associationID uuid.UUID, filter household.Filter) *gorm.DB {
	query = query.Where("association_id = ?", associationID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Block != "" {
		query = query.Where("block = ?", filter.Block)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("head_name LIKE ? OR house_number LIKE ?", search, search)
	}
	return query
}

var _ household.Repository = (*GormHouseholdRepository)(nil)
