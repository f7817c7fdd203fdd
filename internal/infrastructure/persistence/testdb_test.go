package persistence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the same
// schema the migrations define, including the unique indexes the
// conflict-skipping insert and the address check rely on
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE associations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			association_id TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			household_id TEXT,
			last_login_at DATETIME,
			failed_attempts INTEGER NOT NULL DEFAULT 0,
			locked_until DATETIME,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE households (
			id TEXT PRIMARY KEY,
			association_id TEXT NOT NULL,
			head_name TEXT NOT NULL,
			block TEXT,
			house_number TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			user_id TEXT,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE(association_id, block, house_number)
		)`,
		`CREATE TABLE dues_categories (
			id TEXT PRIMARY KEY,
			association_id TEXT NOT NULL,
			name TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			description TEXT,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE bills (
			id TEXT PRIMARY KEY,
			association_id TEXT NOT NULL,
			household_id TEXT NOT NULL,
			category_id TEXT NOT NULL,
			month INTEGER NOT NULL,
			year INTEGER NOT NULL,
			amount NUMERIC NOT NULL,
			status TEXT NOT NULL DEFAULT 'unpaid',
			paid_at DATETIME,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE(association_id, household_id, category_id, month, year)
		)`,
		`CREATE TABLE ledger_entries (
			id TEXT PRIMARY KEY,
			association_id TEXT NOT NULL,
			date DATETIME NOT NULL,
			description TEXT NOT NULL,
			direction TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			bill_id TEXT,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE notifications (
			id TEXT PRIMARY KEY,
			association_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			message TEXT,
			kind TEXT NOT NULL,
			read INTEGER NOT NULL DEFAULT 0,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func mustHousehold(t *testing.T, associationID uuid.UUID, headName, block, houseNumber string) *household.Household {
	t.Helper()
	h, err := household.NewHousehold(associationID, headName, block, houseNumber, "", "")
	require.NoError(t, err)
	return h
}

func mustCategory(t *testing.T, associationID uuid.UUID, name string, amount int64) *dues.Category {
	t.Helper()
	c, err := dues.NewCategory(associationID, name, valueobject.NewMoneyIDRFromInt(amount), "")
	require.NoError(t, err)
	return c
}

func mustBill(t *testing.T, associationID, householdID, categoryID uuid.UUID, period dues.Period, amount int64) *dues.Bill {
	t.Helper()
	b, err := dues.NewBill(associationID, householdID, categoryID, period, valueobject.NewMoneyIDRFromInt(amount))
	require.NoError(t, err)
	return b
}
