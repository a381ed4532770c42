package allotment

import (
	"errors"
	"testing"

	"hostel-booking/apperrors"
	accommodationModel "hostel-booking/models/accommodation"
	allotmentModel "hostel-booking/models/allotment"
	roomModel "hostel-booking/models/room"
	"hostel-booking/storage/storagetest"
	"hostel-booking/types"
)

type nopMailer struct{}

func (nopMailer) Send(to, subject, html string) error { return nil }

func paidBooking(party int) *accommodationModel.Accommodation {
	return &accommodationModel.Accommodation{
		ID:             "acco-1",
		Name:           "Asha Verma",
		Email:          "asha@example.com",
		NumberOfPeople: party,
		Paid:           true,
		Status:         accommodationModel.StatusPaid,
	}
}

// allotmentStore wires a fake around one booking and one hostel of rooms.
// The target room is rooms[0].
func allotmentStore(acco *accommodationModel.Accommodation, rooms []roomModel.Room) (*storagetest.FakeStore, *writes) {
	w := &writes{}
	store := &storagetest.FakeStore{
		AccommodationByIDFn: func(id string) (*accommodationModel.Accommodation, error) {
			if id == acco.ID {
				return acco, nil
			}
			return nil, apperrors.ErrNotFound
		},
		AllotmentByAccommodationIDFn: func(accommodationID string) (*allotmentModel.Allotment, error) {
			return nil, apperrors.ErrNotFound
		},
		RoomByIDFn: func(id string) (*roomModel.Room, error) {
			for i := range rooms {
				if rooms[i].ID == id {
					return &rooms[i], nil
				}
			}
			return nil, apperrors.ErrNotFound
		},
		RoomsByHostelForUpdateFn: func(hostelName string) ([]roomModel.Room, error) {
			return rooms, nil
		},
		CreateAllotmentFn: func(a *allotmentModel.Allotment) error {
			w.allotment = a
			return nil
		},
		SaveRoomFn: func(r *roomModel.Room) error {
			w.room = r
			return nil
		},
		SaveAccommodationFn: func(a *accommodationModel.Accommodation) error {
			w.accommodation = a
			return nil
		},
	}
	return store, w
}

type writes struct {
	allotment     *allotmentModel.Allotment
	room          *roomModel.Room
	accommodation *accommodationModel.Accommodation
}

func (w *writes) any() bool {
	return w.allotment != nil || w.room != nil || w.accommodation != nil
}

func TestAllotReservesBedsAndMarksAllotted(t *testing.T) {
	acco := paidBooking(3)
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "SH001", HostelName: "Sharavati", Capacity: 4, Occupied: 1, Available: true},
		{ID: "room-2", RoomNumber: "SH002", HostelName: "Sharavati", Capacity: 4, Occupied: 0, Available: true},
	}
	store, w := allotmentStore(acco, rooms)
	svc := NewService(store, nopMailer{})

	got, err := svc.Allot(types.AllotmentCreateRequest{
		AccommodationID: "acco-1",
		RoomID:          "room-1",
	}, "admin")
	if err != nil {
		t.Fatalf("Allot() error = %v", err)
	}

	if got.AccommodationID != "acco-1" || got.RoomID != "room-1" {
		t.Errorf("allotment = %s/%s, want acco-1/room-1", got.AccommodationID, got.RoomID)
	}
	if w.room == nil {
		t.Fatal("room occupancy was not written")
	}
	// 1 occupied + party of 3 fills the room exactly.
	if w.room.Occupied != 4 {
		t.Errorf("room occupied = %d, want 4", w.room.Occupied)
	}
	if w.room.Available {
		t.Error("a full room must be marked unavailable")
	}
	if w.accommodation == nil || w.accommodation.Status != accommodationModel.StatusAllotted {
		t.Error("accommodation must be marked allotted")
	}
}

func TestAllotRejectsFullRoomWithoutWriting(t *testing.T) {
	acco := paidBooking(2)
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "SH001", HostelName: "Sharavati", Capacity: 4, Occupied: 3, Available: true},
		{ID: "room-2", RoomNumber: "SH002", HostelName: "Sharavati", Capacity: 4, Occupied: 0, Available: true},
	}
	store, w := allotmentStore(acco, rooms)
	svc := NewService(store, nopMailer{})

	_, err := svc.Allot(types.AllotmentCreateRequest{
		AccommodationID: "acco-1",
		RoomID:          "room-1",
	}, "admin")
	if !errors.Is(err, apperrors.ErrCapacity) {
		t.Fatalf("Allot() error = %v, want capacity error", err)
	}
	if w.any() {
		t.Error("a rejected allotment must not write anything")
	}
}

func TestAllotRejectsWhenHostelAggregateIsFull(t *testing.T) {
	acco := paidBooking(2)
	// The target room has space but the hostel as a whole does not.
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "NA001", HostelName: "Narmada", Capacity: 3, Occupied: 1, Available: true},
		{ID: "room-2", RoomNumber: "NA002", HostelName: "Narmada", Capacity: 3, Occupied: 3, Available: false},
		{ID: "room-3", RoomNumber: "NA003", HostelName: "Narmada", Capacity: 3, Occupied: 3, Available: false},
	}
	store, w := allotmentStore(acco, rooms)
	svc := NewService(store, nopMailer{})

	_, err := svc.Allot(types.AllotmentCreateRequest{
		AccommodationID: "acco-1",
		RoomID:          "room-1",
	}, "admin")
	if !errors.Is(err, apperrors.ErrCapacity) {
		t.Fatalf("Allot() error = %v, want capacity error", err)
	}
	if w.any() {
		t.Error("a rejected allotment must not write anything")
	}
}

func TestAllotRequiresPaidBooking(t *testing.T) {
	acco := paidBooking(2)
	acco.Paid = false
	acco.Status = accommodationModel.StatusPendingPayment
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "SH001", HostelName: "Sharavati", Capacity: 4, Occupied: 0, Available: true},
	}
	store, _ := allotmentStore(acco, rooms)
	svc := NewService(store, nopMailer{})

	_, err := svc.Allot(types.AllotmentCreateRequest{
		AccommodationID: "acco-1",
		RoomID:          "room-1",
	}, "admin")
	if !errors.Is(err, apperrors.ErrPrecondition) {
		t.Errorf("Allot() error = %v, want precondition error", err)
	}
}

func TestAllotRejectsDuplicateAllotment(t *testing.T) {
	acco := paidBooking(2)
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "SH001", HostelName: "Sharavati", Capacity: 4, Occupied: 0, Available: true},
	}
	store, _ := allotmentStore(acco, rooms)
	store.AllotmentByAccommodationIDFn = func(accommodationID string) (*allotmentModel.Allotment, error) {
		return &allotmentModel.Allotment{ID: "allot-1", AccommodationID: accommodationID, RoomID: "room-1"}, nil
	}
	svc := NewService(store, nopMailer{})

	_, err := svc.Allot(types.AllotmentCreateRequest{
		AccommodationID: "acco-1",
		RoomID:          "room-1",
	}, "admin")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("Allot() error = %v, want conflict error", err)
	}
}

func TestCheckInMarksArrival(t *testing.T) {
	acco := paidBooking(2)
	store := &storagetest.FakeStore{
		AccommodationByIDFn: func(id string) (*accommodationModel.Accommodation, error) {
			return acco, nil
		},
		SaveAccommodationFn: func(a *accommodationModel.Accommodation) error { return nil },
	}
	svc := NewService(store, nopMailer{})

	got, err := svc.CheckInOut(types.CheckInOutRequest{AccommodationID: "acco-1", Action: "checkin"})
	if err != nil {
		t.Fatalf("CheckInOut() error = %v", err)
	}
	if got.Status != accommodationModel.StatusCheckedIn {
		t.Errorf("Status = %s, want %s", got.Status, accommodationModel.StatusCheckedIn)
	}
	if got.CheckInAt == nil {
		t.Error("check-in time was not recorded")
	}
}

func TestCheckInRequiresPayment(t *testing.T) {
	acco := paidBooking(2)
	acco.Paid = false
	store := &storagetest.FakeStore{
		AccommodationByIDFn: func(id string) (*accommodationModel.Accommodation, error) {
			return acco, nil
		},
	}
	svc := NewService(store, nopMailer{})

	_, err := svc.CheckInOut(types.CheckInOutRequest{AccommodationID: "acco-1", Action: "checkin"})
	if !errors.Is(err, apperrors.ErrPrecondition) {
		t.Errorf("CheckInOut() error = %v, want precondition error", err)
	}
}

func TestCheckOutReleasesBedsAndReopensRoom(t *testing.T) {
	acco := paidBooking(3)
	acco.Status = accommodationModel.StatusCheckedIn
	room := roomModel.Room{ID: "room-1", RoomNumber: "SH001", HostelName: "Sharavati", Capacity: 4, Occupied: 4, Available: false}
	var savedRoom *roomModel.Room
	store := &storagetest.FakeStore{
		AccommodationByIDFn: func(id string) (*accommodationModel.Accommodation, error) {
			return acco, nil
		},
		AllotmentByAccommodationIDFn: func(accommodationID string) (*allotmentModel.Allotment, error) {
			return &allotmentModel.Allotment{ID: "allot-1", AccommodationID: accommodationID, RoomID: "room-1"}, nil
		},
		RoomByIDForUpdateFn: func(id string) (*roomModel.Room, error) {
			return &room, nil
		},
		SaveRoomFn: func(r *roomModel.Room) error {
			savedRoom = r
			return nil
		},
		SaveAccommodationFn: func(a *accommodationModel.Accommodation) error { return nil },
	}
	svc := NewService(store, nopMailer{})

	got, err := svc.CheckInOut(types.CheckInOutRequest{AccommodationID: "acco-1", Action: "checkout"})
	if err != nil {
		t.Fatalf("CheckInOut() error = %v", err)
	}
	if got.Status != accommodationModel.StatusCheckedOut {
		t.Errorf("Status = %s, want %s", got.Status, accommodationModel.StatusCheckedOut)
	}
	if got.CheckOutAt == nil {
		t.Error("check-out time was not recorded")
	}
	if savedRoom == nil {
		t.Fatal("room was not written on checkout")
	}
	if savedRoom.Occupied != 1 {
		t.Errorf("room occupied = %d, want 1", savedRoom.Occupied)
	}
	if !savedRoom.Available {
		t.Error("room with free beds must be available again")
	}
}

func TestCheckOutFloorsOccupiedAtZero(t *testing.T) {
	acco := paidBooking(3)
	room := roomModel.Room{ID: "room-1", RoomNumber: "SH001", HostelName: "Sharavati", Capacity: 4, Occupied: 2, Available: true}
	store := &storagetest.FakeStore{
		AccommodationByIDFn: func(id string) (*accommodationModel.Accommodation, error) {
			return acco, nil
		},
		AllotmentByAccommodationIDFn: func(accommodationID string) (*allotmentModel.Allotment, error) {
			return &allotmentModel.Allotment{ID: "allot-1", AccommodationID: accommodationID, RoomID: "room-1"}, nil
		},
		RoomByIDForUpdateFn: func(id string) (*roomModel.Room, error) {
			return &room, nil
		},
		SaveRoomFn:          func(r *roomModel.Room) error { return nil },
		SaveAccommodationFn: func(a *accommodationModel.Accommodation) error { return nil },
	}
	svc := NewService(store, nopMailer{})

	if _, err := svc.CheckInOut(types.CheckInOutRequest{AccommodationID: "acco-1", Action: "checkout"}); err != nil {
		t.Fatalf("CheckInOut() error = %v", err)
	}
	if room.Occupied != 0 {
		t.Errorf("room occupied = %d, want 0 (floored)", room.Occupied)
	}
}

func TestCheckOutWithoutAllotmentStillCompletes(t *testing.T) {
	acco := paidBooking(2)
	store := &storagetest.FakeStore{
		AccommodationByIDFn: func(id string) (*accommodationModel.Accommodation, error) {
			return acco, nil
		},
		AllotmentByAccommodationIDFn: func(accommodationID string) (*allotmentModel.Allotment, error) {
			return nil, apperrors.ErrNotFound
		},
		SaveAccommodationFn: func(a *accommodationModel.Accommodation) error { return nil },
	}
	svc := NewService(store, nopMailer{})

	got, err := svc.CheckInOut(types.CheckInOutRequest{AccommodationID: "acco-1", Action: "checkout"})
	if err != nil {
		t.Fatalf("CheckInOut() error = %v", err)
	}
	if got.Status != accommodationModel.StatusCheckedOut {
		t.Errorf("Status = %s, want %s", got.Status, accommodationModel.StatusCheckedOut)
	}
}

func TestCheckOutTwiceIsRejected(t *testing.T) {
	acco := paidBooking(2)
	past := acco.CreatedAt
	acco.CheckOutAt = &past
	store := &storagetest.FakeStore{
		AccommodationByIDFn: func(id string) (*accommodationModel.Accommodation, error) {
			return acco, nil
		},
	}
	svc := NewService(store, nopMailer{})

	_, err := svc.CheckInOut(types.CheckInOutRequest{AccommodationID: "acco-1", Action: "checkout"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("CheckInOut() error = %v, want conflict error", err)
	}
}

func TestCheckInOutRejectsUnknownAction(t *testing.T) {
	svc := NewService(&storagetest.FakeStore{}, nopMailer{})

	_, err := svc.CheckInOut(types.CheckInOutRequest{AccommodationID: "acco-1", Action: "loiter"})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("CheckInOut() error = %v, want validation error", err)
	}
}
