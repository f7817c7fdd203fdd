// Package report holds the read models behind the admin recap views.
// Reports are queries, not aggregates; the store computes them with SQL
// aggregation and this package only names the row shapes.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// CategoryRecap summarizes one dues category for one period
type CategoryRecap struct {
	CategoryID   uuid.UUID         `json:"category_id"`
	CategoryName string            `json:"category_name"`
	BillCount    int64             `json:"bill_count"`
	PaidCount    int64             `json:"paid_count"`
	TotalBilled  valueobject.Money `json:"total_billed"`
	TotalPaid    valueobject.Money `json:"total_paid"`
}

// MonthlyRecap is the full recap for one period
type MonthlyRecap struct {
	Period     dues.Period       `json:"period"`
	Categories []CategoryRecap   `json:"categories"`
	Billed     valueobject.Money `json:"billed"`
	Collected  valueobject.Money `json:"collected"`
	Balance    valueobject.Money `json:"balance"`
}

// Repository defines the report queries
type Repository interface {
	// CategoryRecap aggregates bills per category for one period
	CategoryRecap(ctx context.Context, associationID uuid.UUID, period dues.Period) ([]CategoryRecap, error)
}
