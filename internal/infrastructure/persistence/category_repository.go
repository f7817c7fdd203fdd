package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCategoryRepository implements dues.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by ID within an association
func (r *GormCategoryRepository) FindByID(ctx context.Context, associationID, id uuid.UUID) (*dues.Category, error) {
	var model models.CategoryModel
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

// FindAll finds categories in an association with filtering
func (r *GormCategoryRepository) FindAll(ctx context.Context, associationID uuid.UUID, filter shared.Filter) ([]dues.Category, error) {
	var categoryModels []models.CategoryModel

	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CategoryModel{}), associationID, filter)
	query = query.Order(orderClauseFor(filter, CategorySortFields, "created_at")).
		Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	return toDomainCategories(categoryModels), nil
}

// ListAll returns every category in the association without paging
func (r *GormCategoryRepository) ListAll(ctx context.Context, associationID uuid.UUID) ([]dues.Category, error) {
	var categoryModels []models.CategoryModel
	err := r.db.WithContext(ctx).
		Where("association_id = ?", associationID).
		Order("name ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategories(categoryModels), nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *dues.Category) error {
	model := models.CategoryModelFromDomain(category)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.CategoryModel{}, "id = ? AND association_id = ?", id, associationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts categories in an association
func (r *GormCategoryRepository) Count(ctx context.Context, associationID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CategoryModel{}), associationID, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCategoryRepository) applyFilter(query *gorm.DB, associationID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("association_id = ?", associationID)
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	return query
}

func toDomainCategories(categoryModels []models.CategoryModel) []dues.Category {
	result := make([]dues.Category, len(categoryModels))
	for i := range categoryModels {
		result[i] = *categoryModels[i].ToDomain()
	}
	return result
}

var _ dues.CategoryRepository = (*GormCategoryRepository)(nil)
