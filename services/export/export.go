// Package export renders admin CSV downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	accommodationModel "hostel-booking/models/accommodation"
	paymentModel "hostel-booking/models/payment"
	roomModel "hostel-booking/models/room"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// AccommodationsCSV renders bookings, one row per accommodation.
func AccommodationsCSV(accos []accommodationModel.Accommodation) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "participant_id", "name", "email", "mobile", "organization",
		"arrival_date", "departure_date", "number_of_people", "accommodation_type",
		"amount", "status", "paid", "order_id", "check_in_at", "check_out_at", "created_at",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, a := range accos {
		row := []string{
			a.ID,
			a.User.ParticipantID,
			a.Name,
			a.Email,
			a.Mobile,
			a.Organization,
			a.ArrivalDate,
			a.DepartureDate,
			strconv.Itoa(a.NumberOfPeople),
			a.AccommodationType,
			strconv.FormatFloat(a.Amount, 'f', 2, 64),
			a.Status.String(),
			strconv.FormatBool(a.Paid),
			deref(a.OrderID),
			formatTime(a.CheckInAt),
			formatTime(a.CheckOutAt),
			a.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RoomsCSV renders the room inventory with its occupancy ledger.
func RoomsCSV(rooms []roomModel.Room) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "room_number", "hostel_name", "room_type", "capacity", "occupied", "free_beds", "available"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range rooms {
		row := []string{
			r.ID,
			r.RoomNumber,
			r.HostelName,
			r.RoomType,
			strconv.Itoa(r.Capacity),
			strconv.Itoa(r.Occupied),
			strconv.Itoa(r.FreeBeds()),
			strconv.FormatBool(r.Available),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PaymentsCSV renders the payment audit trail.
func PaymentsCSV(txns []paymentModel.PaymentTransaction) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "accommodation_id", "order_id", "payment_id", "amount", "currency", "status", "error_description", "created_at"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range txns {
		row := []string{
			t.ID,
			t.AccommodationID,
			t.OrderID,
			deref(t.PaymentID),
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Currency,
			t.Status,
			deref(t.ErrorDescription),
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
