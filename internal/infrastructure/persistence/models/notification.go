package models

import (
	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/notification"
)

// NotificationModel is the persistence model for an in-app notification
type NotificationModel struct {
	TenantAggregateModel
	UserID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Title   string            `gorm:"type:varchar(200);not null"`
	Message string            `gorm:"type:text"`
	Kind    notification.Kind `gorm:"type:varchar(20);not null"`
	Read    bool              `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification
func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		UserID:              m.UserID,
		Title:               m.Title,
		Message:             m.Message,
		Kind:                m.Kind,
		Read:                m.Read,
	}
}

// NotificationModelFromDomain creates a persistence model from a domain Notification
func NotificationModelFromDomain(n *notification.Notification) *NotificationModel {
	m := &NotificationModel{
		UserID:  n.UserID,
		Title:   n.Title,
		Message: n.Message,
		Kind:    n.Kind,
		Read:    n.Read,
	}
	m.FromDomainTenantAggregateRoot(n.TenantAggregateRoot)
	return m
}
