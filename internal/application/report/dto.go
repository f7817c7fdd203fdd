package report

import (
	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/report"
	"github.com/shopspring/decimal"
)

// RecapFilter selects the recap period
type RecapFilter struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
}

// CategoryRecapResponse summarizes one dues category for the period
type CategoryRecapResponse struct {
	CategoryID     uuid.UUID       `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	BillCount      int64           `json:"bill_count"`
	PaidCount      int64           `json:"paid_count"`
	TotalBilled    decimal.Decimal `json:"total_billed"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
}

// MonthlyRecapResponse is the full dues recap for one period
type MonthlyRecapResponse struct {
	Month          int                     `json:"month"`
	Year           int                     `json:"year"`
	Categories     []CategoryRecapResponse `json:"categories"`
	Billed         decimal.Decimal         `json:"billed"`
	Collected      decimal.Decimal         `json:"collected"`
	CollectionRate decimal.Decimal         `json:"collection_rate"`
	Balance        decimal.Decimal         `json:"balance"`
}

func toCategoryRecapResponse(r report.CategoryRecap) CategoryRecapResponse {
	return CategoryRecapResponse{
		CategoryID:     r.CategoryID,
		CategoryName:   r.CategoryName,
		BillCount:      r.BillCount,
		PaidCount:      r.PaidCount,
		TotalBilled:    r.TotalBilled.Amount(),
		TotalPaid:      r.TotalPaid.Amount(),
		CollectionRate: collectionRate(r.TotalPaid.Amount(), r.TotalBilled.Amount()),
	}
}

// collectionRate returns paid/billed as a percentage with two decimal
// places, zero when nothing was billed
func collectionRate(paid, billed decimal.Decimal) decimal.Decimal {
	if billed.IsZero() {
		return decimal.Zero
	}
	return paid.Mul(decimal.NewFromInt(100)).DivRound(billed, 2)
}
