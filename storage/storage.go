// Package storage is the persistence collaborator for the booking services.
// The Store interface keeps services independent of GORM and lets the room
// reservation run as one atomic, row-locked unit of work.
package storage

import (
	accommodationModel "hostel-booking/models/accommodation"
	allotmentModel "hostel-booking/models/allotment"
	paymentModel "hostel-booking/models/payment"
	roomModel "hostel-booking/models/room"
	userModel "hostel-booking/models/user"
)

type Store interface {
	// InTransaction runs fn against a transactional view of the store and
	// commits only when fn returns nil. ForUpdate reads outside a
	// transaction behave as plain reads.
	InTransaction(fn func(Store) error) error

	UserByID(id string) (*userModel.User, error)
	UserByParticipantID(participantID string) (*userModel.User, error)
	CreateUser(u *userModel.User) error

	AccommodationByID(id string) (*accommodationModel.Accommodation, error)
	AccommodationByOrderID(orderID string) (*accommodationModel.Accommodation, error)
	AccommodationExistsForStay(userID, arrivalDate, departureDate string) (bool, error)
	CreateAccommodation(a *accommodationModel.Accommodation) error
	SaveAccommodation(a *accommodationModel.Accommodation) error

	CreatePaymentTransaction(t *paymentModel.PaymentTransaction) error
	PaymentTransactionByOrderID(orderID string) (*paymentModel.PaymentTransaction, error)
	SavePaymentTransaction(t *paymentModel.PaymentTransaction) error

	RoomByID(id string) (*roomModel.Room, error)
	// RoomsByHostelForUpdate locks and returns every room of a hostel in
	// deterministic order, serializing concurrent reservations.
	RoomsByHostelForUpdate(hostelName string) ([]roomModel.Room, error)
	RoomByIDForUpdate(id string) (*roomModel.Room, error)
	SaveRoom(r *roomModel.Room) error

	AllotmentByAccommodationID(accommodationID string) (*allotmentModel.Allotment, error)
	CreateAllotment(a *allotmentModel.Allotment) error
}
