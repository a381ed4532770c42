package types

// RoomCreateRequest adds one room to the inventory.
type RoomCreateRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	HostelName string `json:"hostel_name" validate:"required"`
	RoomType   string `json:"room_type" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
}
