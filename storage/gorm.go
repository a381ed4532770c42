package storage

import (
	"errors"
	"fmt"

	"hostel-booking/apperrors"
	accommodationModel "hostel-booking/models/accommodation"
	allotmentModel "hostel-booking/models/allotment"
	paymentModel "hostel-booking/models/payment"
	roomModel "hostel-booking/models/room"
	userModel "hostel-booking/models/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the production Store backed by a *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) InTransaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return err
}

func (s *GormStore) UserByID(id string) (*userModel.User, error) {
	var u userModel.User
	if err := s.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err, "user not found")
	}
	return &u, nil
}

func (s *GormStore) UserByParticipantID(participantID string) (*userModel.User, error) {
	var u userModel.User
	if err := s.db.Where("participant_id = ?", participantID).First(&u).Error; err != nil {
		return nil, notFound(err, "user not found")
	}
	return &u, nil
}

func (s *GormStore) CreateUser(u *userModel.User) error {
	return s.db.Create(u).Error
}

func (s *GormStore) AccommodationByID(id string) (*accommodationModel.Accommodation, error) {
	var a accommodationModel.Accommodation
	if err := s.db.Preload("User").Where("id = ?", id).First(&a).Error; err != nil {
		return nil, notFound(err, "accommodation not found")
	}
	return &a, nil
}

func (s *GormStore) AccommodationByOrderID(orderID string) (*accommodationModel.Accommodation, error) {
	var a accommodationModel.Accommodation
	if err := s.db.Preload("User").Where("order_id = ?", orderID).First(&a).Error; err != nil {
		return nil, notFound(err, "accommodation not found for order")
	}
	return &a, nil
}

func (s *GormStore) AccommodationExistsForStay(userID, arrivalDate, departureDate string) (bool, error) {
	var count int64
	err := s.db.Model(&accommodationModel.Accommodation{}).
		Where("user_id = ? AND arrival_date = ? AND departure_date = ?", userID, arrivalDate, departureDate).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateAccommodation(a *accommodationModel.Accommodation) error {
	return s.db.Create(a).Error
}

func (s *GormStore) SaveAccommodation(a *accommodationModel.Accommodation) error {
	return s.db.Save(a).Error
}

func (s *GormStore) CreatePaymentTransaction(t *paymentModel.PaymentTransaction) error {
	return s.db.Create(t).Error
}

func (s *GormStore) PaymentTransactionByOrderID(orderID string) (*paymentModel.PaymentTransaction, error) {
	var t paymentModel.PaymentTransaction
	if err := s.db.Where("order_id = ?", orderID).First(&t).Error; err != nil {
		return nil, notFound(err, "payment transaction not found")
	}
	return &t, nil
}

func (s *GormStore) SavePaymentTransaction(t *paymentModel.PaymentTransaction) error {
	return s.db.Save(t).Error
}

func (s *GormStore) RoomByID(id string) (*roomModel.Room, error) {
	var r roomModel.Room
	if err := s.db.Where("id = ?", id).First(&r).Error; err != nil {
		return nil, notFound(err, "room not found")
	}
	return &r, nil
}

func (s *GormStore) RoomByIDForUpdate(id string) (*roomModel.Room, error) {
	var r roomModel.Room
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&r).Error
	if err != nil {
		return nil, notFound(err, "room not found")
	}
	return &r, nil
}

func (s *GormStore) RoomsByHostelForUpdate(hostelName string) ([]roomModel.Room, error) {
	var rooms []roomModel.Room
	// Rooms are locked in room number order so concurrent reservations
	// against the same hostel cannot deadlock each other.
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("hostel_name = ?", hostelName).
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormStore) SaveRoom(r *roomModel.Room) error {
	return s.db.Save(r).Error
}

func (s *GormStore) AllotmentByAccommodationID(accommodationID string) (*allotmentModel.Allotment, error) {
	var a allotmentModel.Allotment
	if err := s.db.Where("accommodation_id = ?", accommodationID).First(&a).Error; err != nil {
		return nil, notFound(err, "allotment not found")
	}
	return &a, nil
}

func (s *GormStore) CreateAllotment(a *allotmentModel.Allotment) error {
	return s.db.Create(a).Error
}
