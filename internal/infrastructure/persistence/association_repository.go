package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/association"
	"github.com/roronge/iuran04/internal/domain/identity"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAssociationRepository implements association.Repository using GORM
type GormAssociationRepository struct {
	db *gorm.DB
}

// NewGormAssociationRepository creates a new GormAssociationRepository
func NewGormAssociationRepository(db *gorm.DB) *GormAssociationRepository {
	return &GormAssociationRepository{db: db}
}

// FindByID finds an association by ID
func (r *GormAssociationRepository) FindByID(ctx context.Context, id uuid.UUID) (*association.Association, error) {
	var model models.AssociationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all associations with filtering
func (r *GormAssociationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]association.Association, error) {
	var assocModels []models.AssociationModel

	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AssociationModel{}), filter)
	query = query.Order(orderClauseFor(filter, AssociationSortFields, "created_at")).
		Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&assocModels).Error; err != nil {
		return nil, err
	}

	result := make([]association.Association, len(assocModels))
	for i := range assocModels {
		result[i] = *assocModels[i].ToDomain()
	}
	return result, nil
}

// Save creates or updates an association
func (r *GormAssociationRepository) Save(ctx context.Context, assoc *association.Association) error {
	model := models.AssociationModelFromDomain(assoc)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an association
func (r *GormAssociationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AssociationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts associations matching the filter
func (r *GormAssociationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AssociationModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Stats returns per-association household and admin counts
func (r *GormAssociationRepository) Stats(ctx context.Context, id uuid.UUID) (*association.Stats, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	stats := &association.Stats{AssociationID: id}

	if err := r.db.WithContext(ctx).
		Model(&models.HouseholdModel{}).
		Where("association_id = ?", id).
		Count(&stats.HouseholdCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("association_id = ? AND role = ?", id, identity.RoleAdmin).
		Count(&stats.AdminCount).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *GormAssociationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	return query
}

var _ association.Repository = (*GormAssociationRepository)(nil)
