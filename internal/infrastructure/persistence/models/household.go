package models

import (
	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/household"
)

// HouseholdModel is the persistence model for a registered house.
// The migration adds a unique index on (association_id, block,
// house_number).
type HouseholdModel struct {
	TenantAggregateModel
	HeadName    string           `gorm:"type:varchar(150);not null"`
	Block       string           `gorm:"type:varchar(20)"`
	HouseNumber string           `gorm:"type:varchar(20);not null"`
	Email       string           `gorm:"type:varchar(200)"`
	Phone       string           `gorm:"type:varchar(50)"`
	Status      household.Status `gorm:"type:varchar(20);not null;default:'active'"`
	UserID      *uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (HouseholdModel) TableName() string {
	return "households"
}

// ToDomain converts the persistence model to a domain Household
func (m *HouseholdModel) ToDomain() *household.Household {
	return &household.Household{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		HeadName:            m.HeadName,
		Block:               m.Block,
		HouseNumber:         m.HouseNumber,
		Email:               m.Email,
		Phone:               m.Phone,
		Status:              m.Status,
		UserID:              m.UserID,
	}
}

// HouseholdModelFromDomain creates a persistence model from a domain Household
func HouseholdModelFromDomain(h *household.Household) *HouseholdModel {
	m := &HouseholdModel{
		HeadName:    h.HeadName,
		Block:       h.Block,
		HouseNumber: h.HouseNumber,
		Email:       h.Email,
		Phone:       h.Phone,
		Status:      h.Status,
		UserID:      h.UserID,
	}
	m.FromDomainTenantAggregateRoot(h.TenantAggregateRoot)
	return m
}
