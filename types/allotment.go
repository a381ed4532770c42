package types

// AllotmentCreateRequest assigns a paid accommodation to a room.
type AllotmentCreateRequest struct {
	AccommodationID string  `json:"accommodation_id" validate:"required"`
	RoomID          string  `json:"room_id" validate:"required"`
	Notes           *string `json:"notes"`
}
