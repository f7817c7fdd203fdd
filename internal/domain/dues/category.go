package dues

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// Category is a recurring dues category (cleaning, security, and so on).
// Amount is the current monthly rate; bills copy it at generation time,
// so later rate changes never touch already-generated bills.
type Category struct {
	shared.TenantAggregateRoot
	Name        string
	Amount      valueobject.Money
	Description string
}

// NewCategory creates a new dues category
func NewCategory(associationID uuid.UUID, name string, amount valueobject.Money, description string) (*Category, error) {
	if associationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSOCIATION", "Association ID is required")
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := validateCategoryAmount(amount); err != nil {
		return nil, err
	}

	return &Category{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(associationID),
		Name:                strings.TrimSpace(name),
		Amount:              amount,
		Description:         strings.TrimSpace(description),
	}, nil
}

// Update changes the category's name, rate, and description
func (c *Category) Update(name string, amount valueobject.Money, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	if err := validateCategoryAmount(amount); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Amount = amount
	c.Description = strings.TrimSpace(description)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}

func validateCategoryAmount(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_CATEGORY_AMOUNT", "Category amount must be positive")
	}
	return nil
}
