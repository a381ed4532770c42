package support

import (
	"time"
)

const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
)

// SupportTicket is a participant query and its administrative response.
type SupportTicket struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Email       string     `gorm:"type:varchar(255);not null" json:"email"`
	Category    string     `gorm:"type:varchar(64);not null" json:"category"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	Status      string     `gorm:"type:varchar(20);not null;default:open" json:"status"`
	Response    *string    `gorm:"type:text" json:"response,omitempty"`
	RespondedBy *string    `gorm:"type:varchar(255)" json:"responded_by,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
