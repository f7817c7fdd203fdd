package models

import (
	"github.com/roronge/iuran04/internal/domain/association"
)

// AssociationModel is the persistence model for an RT unit
type AssociationModel struct {
	AggregateModel
	Name    string             `gorm:"type:varchar(200);not null"`
	Address string             `gorm:"type:varchar(300)"`
	Status  association.Status `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (AssociationModel) TableName() string {
	return "associations"
}

// ToDomain converts the persistence model to a domain Association
func (m *AssociationModel) ToDomain() *association.Association {
	return &association.Association{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address:           m.Address,
		Status:            m.Status,
	}
}

// AssociationModelFromDomain creates a persistence model from a domain Association
func AssociationModelFromDomain(a *association.Association) *AssociationModel {
	m := &AssociationModel{
		Name:    a.Name,
		Address: a.Address,
		Status:  a.Status,
	}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	return m
}
