package dues

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// CategoryService handles dues category operations
type CategoryService struct {
	categoryRepo dues.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo dues.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new dues category
func (s *CategoryService) Create(ctx context.Context, associationID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := dues.NewCategory(associationID, req.Name, valueobject.NewMoneyIDR(req.Amount), req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a dues category by ID
func (s *CategoryService) GetByID(ctx context.Context, associationID, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, associationID, id)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// List retrieves the association's dues categories
func (s *CategoryService) List(ctx context.Context, associationID uuid.UUID, filter shared.Filter) ([]CategoryResponse, int64, error) {
	categories, err := s.categoryRepo.FindAll(ctx, associationID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.categoryRepo.Count(ctx, associationID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *ToCategoryResponse(&categories[i]))
	}

	return responses, total, nil
}

// Update updates a dues category. Already-generated bills keep the
// amount they were generated with.
func (s *CategoryService) Update(ctx context.Context, associationID, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, associationID, id)
	if err != nil {
		return nil, err
	}

	if err := category.Update(req.Name, valueobject.NewMoneyIDR(req.Amount), req.Description); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete removes a dues category
func (s *CategoryService) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, associationID, id); err != nil {
		return err
	}

	return s.categoryRepo.Delete(ctx, associationID, id)
}
