package room

// Room is a physical unit with fixed bed capacity inside a named hostel.
// Occupied counts beds, not bookings: a party of N consumes N units.
type Room struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	RoomNumber string `gorm:"type:varchar(32);not null" json:"room_number"`
	HostelName string `gorm:"type:varchar(255);not null;index" json:"hostel_name"`
	RoomType   string `gorm:"type:varchar(64);not null" json:"room_type"`
	Capacity   int    `gorm:"not null" json:"capacity"`
	Occupied   int    `gorm:"not null;default:0" json:"occupied"`
	Available  bool   `gorm:"default:true" json:"available"`
}

// FreeBeds returns the remaining capacity units.
func (r Room) FreeBeds() int {
	free := r.Capacity - r.Occupied
	if free < 0 {
		return 0
	}
	return free
}
