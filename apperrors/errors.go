// Package apperrors defines the typed failures surfaced by the booking
// services. Controllers translate them to HTTP status codes with errors.Is;
// callers may wrap them with fmt.Errorf("%w: ...") for detail.
package apperrors

import "errors"

var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks duplicate bookings and duplicate allotments.
	ErrConflict = errors.New("conflict")

	// ErrPrecondition marks operations on a booking in the wrong state,
	// such as allotting an unpaid booking.
	ErrPrecondition = errors.New("precondition failed")

	// ErrCapacity marks a room or hostel that cannot take the party.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrNotFound marks an absent booking, room, user or ticket.
	ErrNotFound = errors.New("not found")

	// ErrPaymentVerification marks a gateway signature mismatch. Messages
	// wrapping it must never include the expected signature or the secret.
	ErrPaymentVerification = errors.New("payment verification failed")
)
