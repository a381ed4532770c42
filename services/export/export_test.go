package export

import (
	"encoding/csv"
	"strings"
	"testing"

	accommodationModel "hostel-booking/models/accommodation"
	roomModel "hostel-booking/models/room"
	userModel "hostel-booking/models/user"
)

func TestAccommodationsCSV(t *testing.T) {
	orderID := "order_1"
	accos := []accommodationModel.Accommodation{
		{
			ID:                "acco-1",
			User:              userModel.User{ParticipantID: "P-100"},
			Name:              "Verma, Asha",
			Email:             "asha@example.com",
			Mobile:            "9876543210",
			Organization:      "IIT Bombay",
			ArrivalDate:       "2025-01-10",
			DepartureDate:     "2025-01-12",
			NumberOfPeople:    3,
			AccommodationType: "shared",
			Amount:            1800,
			Status:            accommodationModel.StatusPaid,
			Paid:              true,
			OrderID:           &orderID,
		},
	}

	out, err := AccommodationsCSV(accos)
	if err != nil {
		t.Fatalf("AccommodationsCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}

	row := records[1]
	if row[0] != "acco-1" || row[1] != "P-100" {
		t.Errorf("row identity = %s/%s, want acco-1/P-100", row[0], row[1])
	}
	// A name containing a comma must survive the round trip.
	if row[2] != "Verma, Asha" {
		t.Errorf("name = %q, want %q", row[2], "Verma, Asha")
	}
	if row[10] != "1800.00" {
		t.Errorf("amount = %s, want 1800.00", row[10])
	}
	if row[11] != "paid" || row[12] != "true" {
		t.Errorf("status/paid = %s/%s, want paid/true", row[11], row[12])
	}
}

func TestRoomsCSVIncludesLedger(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "SH001", HostelName: "Sharavati", RoomType: "4-bed", Capacity: 4, Occupied: 3, Available: true},
	}

	out, err := RoomsCSV(rooms)
	if err != nil {
		t.Fatalf("RoomsCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}

	row := records[1]
	if row[4] != "4" || row[5] != "3" || row[6] != "1" {
		t.Errorf("capacity/occupied/free = %s/%s/%s, want 4/3/1", row[4], row[5], row[6])
	}
}
