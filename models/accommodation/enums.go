package accommodation

// AccommodationStatus tracks the booking lifecycle. The paid flag is kept in
// sync with it for payment polling clients.
type AccommodationStatus string

const (
	StatusPendingPayment AccommodationStatus = "pending_payment"
	StatusPaid           AccommodationStatus = "paid"
	StatusAllotted       AccommodationStatus = "allotted"
	StatusCheckedIn      AccommodationStatus = "checked_in"
	StatusCheckedOut     AccommodationStatus = "checked_out"
)

func (s AccommodationStatus) String() string {
	return string(s)
}

func (s AccommodationStatus) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusPaid, StatusAllotted, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// IsPaid reports whether payment has been verified for this status.
func (s AccommodationStatus) IsPaid() bool {
	return s != StatusPendingPayment
}

// CanBeAllotted reports whether a room may be assigned in this status.
// Only a paid, not-yet-allotted booking qualifies.
func (s AccommodationStatus) CanBeAllotted() bool {
	return s == StatusPaid
}

// GetAllStatuses returns every valid accommodation status.
func GetAllStatuses() []AccommodationStatus {
	return []AccommodationStatus{
		StatusPendingPayment,
		StatusPaid,
		StatusAllotted,
		StatusCheckedIn,
		StatusCheckedOut,
	}
}
