package types

// SupportCreateRequest opens a support ticket.
type SupportCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// SupportRespondRequest resolves a ticket with an administrative response.
type SupportRespondRequest struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Response string `json:"response" validate:"required"`
}
