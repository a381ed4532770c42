package types

// AccommodationCreateRequest is the booking intake payload. Amount is never
// accepted from the client; it is computed server side.
type AccommodationCreateRequest struct {
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Mobile             string   `json:"mobile" validate:"required"`
	DOB                string   `json:"dob"`
	Gender             string   `json:"gender" validate:"required"`
	IDType             string   `json:"id_type" validate:"required"`
	IDNumber           string   `json:"id_number" validate:"required"`
	Address            string   `json:"address" validate:"required"`
	Organization       string   `json:"organization" validate:"required"`
	ArrivalDate        string   `json:"arrival_date" validate:"required"`
	DepartureDate      string   `json:"departure_date" validate:"required"`
	NumberOfPeople     int      `json:"number_of_people" validate:"required,min=1"`
	GuestGenders       []string `json:"guest_genders"`
	AccommodationType  string   `json:"accommodation_type" validate:"required"`
	EventName          *string  `json:"event_name"`
	TermsAndConditions bool     `json:"terms_and_conditions"`
}

// VerifyPaymentRequest carries the gateway callback values the client relays
// after completing a payment.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// CheckInOutRequest toggles the stay lifecycle for one accommodation.
type CheckInOutRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required"`
	Action          string `json:"action" validate:"required,oneof=checkin checkout"`
}
