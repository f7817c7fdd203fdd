package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/ledger"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LedgerEntryModel is the persistence model for one cash-book line
type LedgerEntryModel struct {
	TenantAggregateModel
	Date        time.Time        `gorm:"not null;index"`
	Description string           `gorm:"type:varchar(300);not null"`
	Direction   ledger.Direction `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal  `gorm:"type:numeric(18,2);not null"`
	BillID      *uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToDomain converts the persistence model to a domain Entry
func (m *LedgerEntryModel) ToDomain() *ledger.Entry {
	return &ledger.Entry{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Date:                m.Date,
		Description:         m.Description,
		Direction:           m.Direction,
		Amount:              valueobject.NewMoneyIDR(m.Amount),
		BillID:              m.BillID,
	}
}

// LedgerEntryModelFromDomain creates a persistence model from a domain Entry
func LedgerEntryModelFromDomain(e *ledger.Entry) *LedgerEntryModel {
	m := &LedgerEntryModel{
		Date:        e.Date,
		Description: e.Description,
		Direction:   e.Direction,
		Amount:      e.Amount.Amount(),
		BillID:      e.BillID,
	}
	m.FromDomainTenantAggregateRoot(e.TenantAggregateRoot)
	return m
}
