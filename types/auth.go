package types

// LoginRequest authenticates a participant by their event id.
type LoginRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

// RegisterRequest creates a participant account.
type RegisterRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Mobile        string `json:"mobile" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
}
