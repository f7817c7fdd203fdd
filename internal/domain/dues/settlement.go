package dues

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// ReceiptItem is one paid line on a receipt
type ReceiptItem struct {
	BillID       uuid.UUID         `json:"bill_id"`
	CategoryName string            `json:"category_name"`
	Amount       valueobject.Money `json:"amount"`
}

// Receipt is the hand-off value a settlement produces. It is built
// entirely from the settled lines and the payment timestamp; no
// read-back is needed.
type Receipt struct {
	HouseholdID uuid.UUID         `json:"household_id"`
	HeadName    string            `json:"head_name"`
	Block       string            `json:"block"`
	HouseNumber string            `json:"house_number"`
	Period      Period            `json:"period"`
	Items       []ReceiptItem     `json:"items"`
	Total       valueobject.Money `json:"total"`
	PaidAt      time.Time         `json:"paid_at"`
}

// BuildReceipt assembles a receipt from the lines settled in one
// operation. All lines must belong to the same household; a bulk
// settlement shares one payment timestamp across its items.
func BuildReceipt(lines []BillingLine, paidAt time.Time) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_RECEIPT", "Receipt requires at least one settled bill")
	}

	first := lines[0]
	receipt := &Receipt{
		HouseholdID: first.HouseholdID,
		HeadName:    first.HeadName,
		Block:       first.Block,
		HouseNumber: first.HouseNumber,
		Period:      first.Period,
		Items:       make([]ReceiptItem, 0, len(lines)),
		Total:       valueobject.ZeroIDR(),
		PaidAt:      paidAt,
	}

	for _, line := range lines {
		if line.HouseholdID != first.HouseholdID {
			return nil, shared.NewDomainError("MIXED_RECEIPT", "Receipt lines must belong to one household")
		}
		receipt.Items = append(receipt.Items, ReceiptItem{
			BillID:       line.BillID,
			CategoryName: line.CategoryName,
			Amount:       line.Amount,
		})
		receipt.Total = receipt.Total.MustAdd(line.Amount)
	}

	return receipt, nil
}

// SettlementOutcome is the per-bill result of a bulk settlement.
// Already-settled bills stay settled when a later item fails.
type SettlementOutcome struct {
	BillID  uuid.UUID `json:"bill_id"`
	Settled bool      `json:"settled"`
	Error   string    `json:"error,omitempty"`
}

// SettlementDescription is the ledger description for a dues payment
func SettlementDescription(categoryName, headName string) string {
	return fmt.Sprintf("Pembayaran %s - %s", categoryName, headName)
}
