package user

import (
	"time"
)

const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// User is a portal account. Participants own accommodation requests;
// admins manage rooms, allotments and support tickets.
type User struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	ParticipantID string     `gorm:"type:varchar(64);not null;unique" json:"participant_id"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	Email         string     `gorm:"type:varchar(255);not null" json:"email"`
	Mobile        string     `gorm:"type:varchar(20);not null" json:"mobile"`
	Password      string     `gorm:"type:varchar(255)" json:"-"`
	Role          string     `gorm:"type:varchar(20);not null;default:participant" json:"role"`
	Verified      bool       `gorm:"default:true" json:"verified"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
