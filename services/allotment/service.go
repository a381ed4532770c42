// Package allotment assigns paid bookings to rooms and runs the stay
// lifecycle. All capacity accounting happens inside one transaction with the
// affected rooms row-locked, so beds are never oversold.
package allotment

import (
	"errors"
	"fmt"
	"time"

	"hostel-booking/apperrors"
	"hostel-booking/httpServices/mailer"
	"hostel-booking/logger"
	accommodationModel "hostel-booking/models/accommodation"
	allotmentModel "hostel-booking/models/allotment"
	roomModel "hostel-booking/models/room"
	"hostel-booking/storage"
	"hostel-booking/types"
	"hostel-booking/utils"

	"github.com/google/uuid"
)

// Mailer sends best-effort notification email.
type Mailer interface {
	Send(to, subject, html string) error
}

type Service struct {
	store  storage.Store
	mailer Mailer
}

func NewService(store storage.Store, m Mailer) *Service {
	return &Service{store: store, mailer: m}
}

// Allot reserves beds in a room for a paid booking. The room and its hostel
// are checked against the party size with the hostel's rooms locked; when
// either would overflow, nothing is written.
func (s *Service) Allot(req types.AllotmentCreateRequest, allottedBy string) (*allotmentModel.Allotment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var created *allotmentModel.Allotment
	var acco *accommodationModel.Accommodation
	var room *roomModel.Room

	err := s.store.InTransaction(func(tx storage.Store) error {
		var err error
		acco, err = tx.AccommodationByID(req.AccommodationID)
		if err != nil {
			return err
		}
		if !acco.Paid {
			return fmt.Errorf("%w: accommodation is not paid", apperrors.ErrPrecondition)
		}

		_, err = tx.AllotmentByAccommodationID(acco.ID)
		if err == nil {
			return fmt.Errorf("%w: accommodation is already allotted", apperrors.ErrConflict)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		target, err := tx.RoomByID(req.RoomID)
		if err != nil {
			return err
		}

		rooms, err := tx.RoomsByHostelForUpdate(target.HostelName)
		if err != nil {
			return fmt.Errorf("failed to lock hostel rooms: %w", err)
		}

		var hostelCapacity, hostelOccupied int
		for i := range rooms {
			hostelCapacity += rooms[i].Capacity
			hostelOccupied += rooms[i].Occupied
			if rooms[i].ID == target.ID {
				room = &rooms[i]
			}
		}
		if room == nil {
			return fmt.Errorf("%w: room not found", apperrors.ErrNotFound)
		}

		party := acco.NumberOfPeople
		if room.Occupied+party > room.Capacity {
			return fmt.Errorf("%w: room %s cannot fit %d more guests", apperrors.ErrCapacity, room.RoomNumber, party)
		}
		if hostelOccupied+party > hostelCapacity {
			return fmt.Errorf("%w: hostel %s is at capacity", apperrors.ErrCapacity, room.HostelName)
		}

		created = &allotmentModel.Allotment{
			ID:              uuid.NewString(),
			AccommodationID: acco.ID,
			RoomID:          room.ID,
			AllottedBy:      allottedBy,
			Notes:           req.Notes,
		}
		if err := tx.CreateAllotment(created); err != nil {
			return fmt.Errorf("failed to create allotment: %w", err)
		}

		room.Occupied += party
		if room.Occupied >= room.Capacity {
			room.Available = false
		}
		if err := tx.SaveRoom(room); err != nil {
			return fmt.Errorf("failed to update room occupancy: %w", err)
		}

		acco.Status = accommodationModel.StatusAllotted
		if err := tx.SaveAccommodation(acco); err != nil {
			return fmt.Errorf("failed to update accommodation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	subject, html := mailer.RoomAllotted(acco.Name, room.HostelName, room.RoomNumber)
	go s.sendMail(acco, subject, html)

	return created, nil
}

// CheckInOut records an arrival or a departure. Checkout releases the beds
// the party occupied and re-opens the room when space frees up; a booking
// that was never allotted can still check out.
func (s *Service) CheckInOut(req types.CheckInOutRequest) (*accommodationModel.Accommodation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	switch req.Action {
	case "checkin":
		return s.checkIn(req.AccommodationID)
	case "checkout":
		return s.checkOut(req.AccommodationID)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", apperrors.ErrValidation, req.Action)
	}
}

func (s *Service) checkIn(accommodationID string) (*accommodationModel.Accommodation, error) {
	acco, err := s.store.AccommodationByID(accommodationID)
	if err != nil {
		return nil, err
	}
	if !acco.Paid {
		return nil, fmt.Errorf("%w: accommodation is not paid", apperrors.ErrPrecondition)
	}
	if acco.CheckInAt != nil {
		return nil, fmt.Errorf("%w: accommodation is already checked in", apperrors.ErrConflict)
	}

	nowTime := time.Now()
	acco.CheckInAt = &nowTime
	acco.Status = accommodationModel.StatusCheckedIn
	if err := s.store.SaveAccommodation(acco); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	subject, html := mailer.CheckedIn(acco.Name)
	go s.sendMail(acco, subject, html)

	return acco, nil
}

func (s *Service) checkOut(accommodationID string) (*accommodationModel.Accommodation, error) {
	var acco *accommodationModel.Accommodation
	err := s.store.InTransaction(func(tx storage.Store) error {
		var err error
		acco, err = tx.AccommodationByID(accommodationID)
		if err != nil {
			return err
		}
		if acco.CheckOutAt != nil {
			return fmt.Errorf("%w: accommodation is already checked out", apperrors.ErrConflict)
		}

		allot, err := tx.AllotmentByAccommodationID(acco.ID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if allot != nil {
			room, err := tx.RoomByIDForUpdate(allot.RoomID)
			if err != nil {
				return err
			}
			room.Occupied -= acco.NumberOfPeople
			if room.Occupied < 0 {
				room.Occupied = 0
			}
			if room.Occupied < room.Capacity {
				room.Available = true
			}
			if err := tx.SaveRoom(room); err != nil {
				return fmt.Errorf("failed to release room beds: %w", err)
			}
		}

		nowTime := time.Now()
		acco.CheckOutAt = &nowTime
		acco.Status = accommodationModel.StatusCheckedOut
		if err := tx.SaveAccommodation(acco); err != nil {
			return fmt.Errorf("failed to record check-out: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	subject, html := mailer.CheckedOut(acco.Name)
	go s.sendMail(acco, subject, html)

	return acco, nil
}

func (s *Service) sendMail(acco *accommodationModel.Accommodation, subject, html string) {
	if err := s.mailer.Send(acco.Email, subject, html); err != nil {
		logger.Error("Failed to send stay lifecycle email", err)
	}
}
