package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest records a manual cash-book entry
type CreateEntryRequest struct {
	Date        *time.Time      `json:"date"`
	Description string          `json:"description" binding:"required,min=1,max=300"`
	Direction   string          `json:"direction" binding:"required,direction"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ListFilter carries the cash-book list query parameters
type ListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	Direction string     `form:"direction"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
}

// EntryResponse represents a cash-book entry in API responses
type EntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Direction   string          `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	BillID      *uuid.UUID      `json:"bill_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BalanceResponse is the association's current cash balance
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ToEntryResponse converts a domain entry to a response DTO
func ToEntryResponse(e *ledger.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Direction:   string(e.Direction),
		Amount:      e.Amount.Amount(),
		BillID:      e.BillID,
		CreatedAt:   e.CreatedAt,
	}
}
