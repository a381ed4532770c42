// Package storagetest provides a configurable in-memory Store fake for
// service tests. Only the funcs a test sets are implemented; everything else
// fails loudly.
package storagetest

import (
	"fmt"

	accommodationModel "hostel-booking/models/accommodation"
	allotmentModel "hostel-booking/models/allotment"
	paymentModel "hostel-booking/models/payment"
	roomModel "hostel-booking/models/room"
	userModel "hostel-booking/models/user"
	"hostel-booking/storage"
)

type FakeStore struct {
	InTransactionFn func(fn func(storage.Store) error) error

	UserByIDFn            func(id string) (*userModel.User, error)
	UserByParticipantIDFn func(participantID string) (*userModel.User, error)
	CreateUserFn          func(u *userModel.User) error

	AccommodationByIDFn          func(id string) (*accommodationModel.Accommodation, error)
	AccommodationByOrderIDFn     func(orderID string) (*accommodationModel.Accommodation, error)
	AccommodationExistsForStayFn func(userID, arrivalDate, departureDate string) (bool, error)
	CreateAccommodationFn        func(a *accommodationModel.Accommodation) error
	SaveAccommodationFn          func(a *accommodationModel.Accommodation) error

	CreatePaymentTransactionFn    func(t *paymentModel.PaymentTransaction) error
	PaymentTransactionByOrderIDFn func(orderID string) (*paymentModel.PaymentTransaction, error)
	SavePaymentTransactionFn      func(t *paymentModel.PaymentTransaction) error

	RoomByIDFn               func(id string) (*roomModel.Room, error)
	RoomByIDForUpdateFn      func(id string) (*roomModel.Room, error)
	RoomsByHostelForUpdateFn func(hostelName string) ([]roomModel.Room, error)
	SaveRoomFn               func(r *roomModel.Room) error

	AllotmentByAccommodationIDFn func(accommodationID string) (*allotmentModel.Allotment, error)
	CreateAllotmentFn            func(a *allotmentModel.Allotment) error
}

var _ storage.Store = (*FakeStore)(nil)

func notSet(name string) error {
	return fmt.Errorf("storagetest: %s not set", name)
}

// InTransaction runs fn against the fake itself unless overridden, so tests
// observe every write that would have happened inside the transaction.
func (f *FakeStore) InTransaction(fn func(storage.Store) error) error {
	if f.InTransactionFn != nil {
		return f.InTransactionFn(fn)
	}
	return fn(f)
}

func (f *FakeStore) UserByID(id string) (*userModel.User, error) {
	if f.UserByIDFn == nil {
		return nil, notSet("UserByIDFn")
	}
	return f.UserByIDFn(id)
}

func (f *FakeStore) UserByParticipantID(participantID string) (*userModel.User, error) {
	if f.UserByParticipantIDFn == nil {
		return nil, notSet("UserByParticipantIDFn")
	}
	return f.UserByParticipantIDFn(participantID)
}

func (f *FakeStore) CreateUser(u *userModel.User) error {
	if f.CreateUserFn == nil {
		return notSet("CreateUserFn")
	}
	return f.CreateUserFn(u)
}

func (f *FakeStore) AccommodationByID(id string) (*accommodationModel.Accommodation, error) {
	if f.AccommodationByIDFn == nil {
		return nil, notSet("AccommodationByIDFn")
	}
	return f.AccommodationByIDFn(id)
}

func (f *FakeStore) AccommodationByOrderID(orderID string) (*accommodationModel.Accommodation, error) {
	if f.AccommodationByOrderIDFn == nil {
		return nil, notSet("AccommodationByOrderIDFn")
	}
	return f.AccommodationByOrderIDFn(orderID)
}

func (f *FakeStore) AccommodationExistsForStay(userID, arrivalDate, departureDate string) (bool, error) {
	if f.AccommodationExistsForStayFn == nil {
		return false, notSet("AccommodationExistsForStayFn")
	}
	return f.AccommodationExistsForStayFn(userID, arrivalDate, departureDate)
}

func (f *FakeStore) CreateAccommodation(a *accommodationModel.Accommodation) error {
	if f.CreateAccommodationFn == nil {
		return notSet("CreateAccommodationFn")
	}
	return f.CreateAccommodationFn(a)
}

func (f *FakeStore) SaveAccommodation(a *accommodationModel.Accommodation) error {
	if f.SaveAccommodationFn == nil {
		return notSet("SaveAccommodationFn")
	}
	return f.SaveAccommodationFn(a)
}

func (f *FakeStore) CreatePaymentTransaction(t *paymentModel.PaymentTransaction) error {
	if f.CreatePaymentTransactionFn == nil {
		return notSet("CreatePaymentTransactionFn")
	}
	return f.CreatePaymentTransactionFn(t)
}

func (f *FakeStore) PaymentTransactionByOrderID(orderID string) (*paymentModel.PaymentTransaction, error) {
	if f.PaymentTransactionByOrderIDFn == nil {
		return nil, notSet("PaymentTransactionByOrderIDFn")
	}
	return f.PaymentTransactionByOrderIDFn(orderID)
}

func (f *FakeStore) SavePaymentTransaction(t *paymentModel.PaymentTransaction) error {
	if f.SavePaymentTransactionFn == nil {
		return notSet("SavePaymentTransactionFn")
	}
	return f.SavePaymentTransactionFn(t)
}

func (f *FakeStore) RoomByID(id string) (*roomModel.Room, error) {
	if f.RoomByIDFn == nil {
		return nil, notSet("RoomByIDFn")
	}
	return f.RoomByIDFn(id)
}

func (f *FakeStore) RoomByIDForUpdate(id string) (*roomModel.Room, error) {
	if f.RoomByIDForUpdateFn == nil {
		return nil, notSet("RoomByIDForUpdateFn")
	}
	return f.RoomByIDForUpdateFn(id)
}

func (f *FakeStore) RoomsByHostelForUpdate(hostelName string) ([]roomModel.Room, error) {
	if f.RoomsByHostelForUpdateFn == nil {
		return nil, notSet("RoomsByHostelForUpdateFn")
	}
	return f.RoomsByHostelForUpdateFn(hostelName)
}

func (f *FakeStore) SaveRoom(r *roomModel.Room) error {
	if f.SaveRoomFn == nil {
		return notSet("SaveRoomFn")
	}
	return f.SaveRoomFn(r)
}

func (f *FakeStore) AllotmentByAccommodationID(accommodationID string) (*allotmentModel.Allotment, error) {
	if f.AllotmentByAccommodationIDFn == nil {
		return nil, notSet("AllotmentByAccommodationIDFn")
	}
	return f.AllotmentByAccommodationIDFn(accommodationID)
}

func (f *FakeStore) CreateAllotment(a *allotmentModel.Allotment) error {
	if f.CreateAllotmentFn == nil {
		return notSet("CreateAllotmentFn")
	}
	return f.CreateAllotmentFn(a)
}
