package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for a dues category
type CategoryModel struct {
	TenantAggregateModel
	Name        string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Description string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "dues_categories"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *dues.Category {
	return &dues.Category{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		Amount:              valueobject.NewMoneyIDR(m.Amount),
		Description:         m.Description,
	}
}

// CategoryModelFromDomain creates a persistence model from a domain Category
func CategoryModelFromDomain(c *dues.Category) *CategoryModel {
	m := &CategoryModel{
		Name:        c.Name,
		Amount:      c.Amount.Amount(),
		Description: c.Description,
	}
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return m
}

// BillModel is the persistence model for one dues obligation.
// The migration adds a unique index on (association_id, household_id,
// category_id, month, year); generation relies on it to skip
// already-issued bills.
type BillModel struct {
	TenantAggregateModel
	HouseholdID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month       int             `gorm:"not null"`
	Year        int             `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status      dues.BillStatus `gorm:"type:varchar(20);not null;default:'unpaid'"`
	PaidAt      *time.Time
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill
func (m *BillModel) ToDomain() *dues.Bill {
	return &dues.Bill{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		HouseholdID:         m.HouseholdID,
		CategoryID:          m.CategoryID,
		Period:              dues.Period{Month: m.Month, Year: m.Year},
		Amount:              valueobject.NewMoneyIDR(m.Amount),
		Status:              m.Status,
		PaidAt:              m.PaidAt,
	}
}

// BillModelFromDomain creates a persistence model from a domain Bill
func BillModelFromDomain(b *dues.Bill) *BillModel {
	m := &BillModel{
		HouseholdID: b.HouseholdID,
		CategoryID:  b.CategoryID,
		Month:       b.Period.Month,
		Year:        b.Period.Year,
		Amount:      b.Amount.Amount(),
		Status:      b.Status,
		PaidAt:      b.PaidAt,
	}
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	return m
}

// BillLineRow is the scan target for bill queries joined with the
// household and category display fields
type BillLineRow struct {
	ID           uuid.UUID
	HouseholdID  uuid.UUID
	CategoryID   uuid.UUID
	HeadName     string
	Block        string
	HouseNumber  string
	CategoryName string
	Month        int
	Year         int
	Amount       decimal.Decimal
	Status       dues.BillStatus
	PaidAt       *time.Time
}

// ToBillingLine converts the joined row to the domain read model
func (r *BillLineRow) ToBillingLine() dues.BillingLine {
	return dues.BillingLine{
		BillID:       r.ID,
		HouseholdID:  r.HouseholdID,
		CategoryID:   r.CategoryID,
		HeadName:     r.HeadName,
		Block:        r.Block,
		HouseNumber:  r.HouseNumber,
		CategoryName: r.CategoryName,
		Period:       dues.Period{Month: r.Month, Year: r.Year},
		Amount:       valueobject.NewMoneyIDR(r.Amount),
		Status:       r.Status,
		PaidAt:       r.PaidAt,
	}
}
