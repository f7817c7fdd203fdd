package persistence

import (
	"strings"

	"github.com/roronge/iuran04/internal/domain/shared"
)

// ValidateSortOrder normalizes the sort direction to ASC or DESC.
// Returns "DESC" if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of
// allowed fields. Returns the defaultField if the input is empty or
// not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"email":         true,
	"name":          true,
	"role":          true,
	"status":        true,
	"last_login_at": true,
}

// HouseholdSortFields contains allowed sort fields for households
var HouseholdSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"head_name":    true,
	"block":        true,
	"house_number": true,
	"status":       true,
}

// CategorySortFields contains allowed sort fields for dues categories
var CategorySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"amount":     true,
}

// LedgerSortFields contains allowed sort fields for cash-book entries
var LedgerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"date":       true,
	"direction":  true,
	"amount":     true,
}

// AssociationSortFields contains allowed sort fields for associations
var AssociationSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

func orderClauseFor(filter shared.Filter, allowedFields map[string]bool, defaultField string) string {
	field := ValidateSortField(filter.OrderBy, allowedFields, defaultField)
	return field + " " + ValidateSortOrder(filter.OrderDir)
}

func orderClause(filter shared.Filter) string {
	return orderClauseFor(filter, CommonSortFields, "created_at")
}
