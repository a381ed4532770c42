package allotment

import (
	"time"

	accommodationModel "hostel-booking/models/accommodation"
	roomModel "hostel-booking/models/room"
)

// Allotment assigns a paid accommodation to a room. Exactly one per
// accommodation; never mutated after creation.
type Allotment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	AccommodationID string                           `gorm:"type:uuid;not null;unique" json:"accommodation_id"`
	Accommodation   accommodationModel.Accommodation `gorm:"foreignKey:AccommodationID" json:"accommodation"`

	RoomID string         `gorm:"type:uuid;not null;index" json:"room_id"`
	Room   roomModel.Room `gorm:"foreignKey:RoomID" json:"room"`

	AllottedBy string    `gorm:"type:varchar(255);not null" json:"allotted_by"`
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
