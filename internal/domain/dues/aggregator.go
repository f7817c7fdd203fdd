package dues

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// GroupStatus is the derived payment status of a household's period
type GroupStatus string

const (
	GroupStatusUnpaid  GroupStatus = "unpaid"  // Nothing paid yet
	GroupStatusPartial GroupStatus = "partial" // Some but not all paid
	GroupStatusPaid    GroupStatus = "paid"    // Everything paid
)

// BillingLine is a bill joined with the display fields the admin and
// resident views need. It is a read model produced by the bill store;
// grouping never goes back to storage for lookups.
type BillingLine struct {
	BillID       uuid.UUID         `json:"bill_id"`
	HouseholdID  uuid.UUID         `json:"household_id"`
	CategoryID   uuid.UUID         `json:"category_id"`
	HeadName     string            `json:"head_name"`
	Block        string            `json:"block"`
	HouseNumber  string            `json:"house_number"`
	CategoryName string            `json:"category_name"`
	Period       Period            `json:"period"`
	Amount       valueobject.Money `json:"amount"`
	Status       BillStatus        `json:"status"`
	PaidAt       *time.Time        `json:"paid_at,omitempty"`
}

// BillGroup is all of one household's bills for one period, with the
// derived totals and tri-state status. It is never persisted.
type BillGroup struct {
	HouseholdID uuid.UUID         `json:"household_id"`
	HeadName    string            `json:"head_name"`
	Block       string            `json:"block"`
	HouseNumber string            `json:"house_number"`
	Period      Period            `json:"period"`
	Lines       []BillingLine     `json:"lines"`
	TotalBilled valueobject.Money `json:"total_billed"`
	TotalPaid   valueobject.Money `json:"total_paid"`
	Status      GroupStatus       `json:"status"`
}

// UnpaidBillIDs returns the IDs of the group's still-unpaid bills
func (g *BillGroup) UnpaidBillIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.Lines))
	for _, line := range g.Lines {
		if line.Status == BillStatusUnpaid {
			ids = append(ids, line.BillID)
		}
	}
	return ids
}

// GroupBills folds a flat set of billing lines into one group per
// household. The result is deterministic: groups are ordered by head
// name then household ID, lines within a group by category name then
// bill ID, regardless of input order. Households with no lines in the
// input do not appear.
func GroupBills(lines []BillingLine) []BillGroup {
	byHousehold := make(map[uuid.UUID]*BillGroup)

	for _, line := range lines {
		group, ok := byHousehold[line.HouseholdID]
		if !ok {
			group = &BillGroup{
				HouseholdID: line.HouseholdID,
				HeadName:    line.HeadName,
				Block:       line.Block,
				HouseNumber: line.HouseNumber,
				Period:      line.Period,
				TotalBilled: valueobject.ZeroIDR(),
				TotalPaid:   valueobject.ZeroIDR(),
			}
			byHousehold[line.HouseholdID] = group
		}

		group.Lines = append(group.Lines, line)
		group.TotalBilled = group.TotalBilled.MustAdd(line.Amount)
		if line.Status == BillStatusPaid {
			group.TotalPaid = group.TotalPaid.MustAdd(line.Amount)
		}
	}

	groups := make([]BillGroup, 0, len(byHousehold))
	for _, group := range byHousehold {
		sort.Slice(group.Lines, func(i, j int) bool {
			a, b := group.Lines[i], group.Lines[j]
			if a.CategoryName != b.CategoryName {
				return a.CategoryName < b.CategoryName
			}
			return a.BillID.String() < b.BillID.String()
		})
		group.Status = deriveGroupStatus(group.TotalBilled, group.TotalPaid)
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].HeadName != groups[j].HeadName {
			return groups[i].HeadName < groups[j].HeadName
		}
		return groups[i].HouseholdID.String() < groups[j].HouseholdID.String()
	})

	return groups
}

// deriveGroupStatus applies the tri-state rule.
// Nothing paid is unpaid, everything (or more) paid is paid,
// anything in between is partial.
func deriveGroupStatus(billed, paid valueobject.Money) GroupStatus {
	if paid.IsZero() {
		return GroupStatusUnpaid
	}
	if covered, _ := paid.GreaterThanOrEqual(billed); covered {
		return GroupStatusPaid
	}
	return GroupStatusPartial
}
