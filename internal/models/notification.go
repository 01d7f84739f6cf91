package models

import "time"

// Notification is an in-app message for a user.
type Notification struct {
	Base
	UserID  string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind    string     `gorm:"type:varchar(32);not null" json:"kind"`
	Title   string     `gorm:"not null" json:"title"`
	Message string     `gorm:"not null" json:"message"`
	ReadAt  *time.Time `json:"read_at,omitempty"`
}
