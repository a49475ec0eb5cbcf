package models

import "time"

// AuditLog is the console's local record of a mutation it routed to the
// backend. Entity ids are the backend's string _id values.
type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Actor    string `gorm:"size:255"` // session email
	Entity   string `gorm:"size:50;not null"`
	EntityID string `gorm:"size:64"`
	Action   string `gorm:"size:50;not null"` // "create", "delete", "status_change" etc.
	Details  string `gorm:"type:text"`

	// Correlation id of the gateway call that performed the mutation.
	RequestID string `gorm:"size:36"`
}
