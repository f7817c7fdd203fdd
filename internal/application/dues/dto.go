package dues

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a dues category
type CreateCategoryRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// UpdateCategoryRequest represents a request to update a dues category
type UpdateCategoryRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// CategoryResponse represents a dues category in API responses
type CategoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *dues.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Amount:      c.Amount.Amount(),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// GenerateBillsRequest represents a request to generate a period's bills
type GenerateBillsRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=1"`
}

// GenerationResponse reports what a generation run did
type GenerationResponse struct {
	Month     int `json:"month"`
	Year      int `json:"year"`
	Requested int `json:"requested"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
}

// BillingLineResponse represents one bill line in API responses
type BillingLineResponse struct {
	BillID       uuid.UUID       `json:"bill_id"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}

// BillGroupResponse represents one household's period in API responses
type BillGroupResponse struct {
	HouseholdID uuid.UUID             `json:"household_id"`
	HeadName    string                `json:"head_name"`
	Block       string                `json:"block"`
	HouseNumber string                `json:"house_number"`
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	Lines       []BillingLineResponse `json:"lines"`
	TotalBilled decimal.Decimal       `json:"total_billed"`
	TotalPaid   decimal.Decimal       `json:"total_paid"`
	Status      string                `json:"status"`
}

// ToBillGroupResponse converts a domain bill group to a response DTO
func ToBillGroupResponse(g *dues.BillGroup) *BillGroupResponse {
	lines := make([]BillingLineResponse, 0, len(g.Lines))
	for _, line := range g.Lines {
		lines = append(lines, BillingLineResponse{
			BillID:       line.BillID,
			CategoryID:   line.CategoryID,
			CategoryName: line.CategoryName,
			Amount:       line.Amount.Amount(),
			Status:       string(line.Status),
			PaidAt:       line.PaidAt,
		})
	}
	return &BillGroupResponse{
		HouseholdID: g.HouseholdID,
		HeadName:    g.HeadName,
		Block:       g.Block,
		HouseNumber: g.HouseNumber,
		Month:       g.Period.Month,
		Year:        g.Period.Year,
		Lines:       lines,
		TotalBilled: g.TotalBilled.Amount(),
		TotalPaid:   g.TotalPaid.Amount(),
		Status:      string(g.Status),
	}
}

// ReceiptItemResponse is one paid line on a receipt
type ReceiptItemResponse struct {
	BillID       uuid.UUID       `json:"bill_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// ReceiptResponse represents a payment receipt in API responses
type ReceiptResponse struct {
	HouseholdID uuid.UUID             `json:"household_id"`
	HeadName    string                `json:"head_name"`
	Block       string                `json:"block"`
	HouseNumber string                `json:"house_number"`
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	Items       []ReceiptItemResponse `json:"items"`
	Total       decimal.Decimal       `json:"total"`
	PaidAt      time.Time             `json:"paid_at"`
}

// ToReceiptResponse converts a domain receipt to a response DTO
func ToReceiptResponse(r *dues.Receipt) *ReceiptResponse {
	items := make([]ReceiptItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ReceiptItemResponse{
			BillID:       item.BillID,
			CategoryName: item.CategoryName,
			Amount:       item.Amount.Amount(),
		})
	}
	return &ReceiptResponse{
		HouseholdID: r.HouseholdID,
		HeadName:    r.HeadName,
		Block:       r.Block,
		HouseNumber: r.HouseNumber,
		Month:       r.Period.Month,
		Year:        r.Period.Year,
		Items:       items,
		Total:       r.Total.Amount(),
		PaidAt:      r.PaidAt,
	}
}

// SettlementOutcomeResponse is the per-bill result of a bulk settlement
type SettlementOutcomeResponse struct {
	BillID  uuid.UUID `json:"bill_id"`
	Settled bool      `json:"settled"`
	Error   string    `json:"error,omitempty"`
}

// BulkSettlementResponse aggregates a pay-all run: every attempted
// bill's outcome plus one combined receipt for the settled lines.
// Receipt is nil when nothing was settled.
type BulkSettlementResponse struct {
	Outcomes []SettlementOutcomeResponse `json:"outcomes"`
	Receipt  *ReceiptResponse            `json:"receipt,omitempty"`
}
