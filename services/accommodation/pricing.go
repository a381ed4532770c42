package accommodation

import (
	"fmt"
	"math"
	"time"

	"hostel-booking/apperrors"

	"github.com/jinzhu/now"
)

func init() {
	// Accept ISO-ish datetimes without a zone, the format the booking form
	// submits, on top of the parser's defaults.
	now.TimeFormats = append(now.TimeFormats, "2006-01-02T15:04", "2006-01-02T15:04:05")
}

// ParseStayWindow parses the arrival and departure values and enforces that
// the window is non-empty.
func ParseStayWindow(arrivalDate, departureDate string) (time.Time, time.Time, error) {
	arrival, err := now.Parse(arrivalDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid arrival date %q", apperrors.ErrValidation, arrivalDate)
	}
	departure, err := now.Parse(departureDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid departure date %q", apperrors.ErrValidation, departureDate)
	}
	if !departure.After(arrival) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: departure must be after arrival", apperrors.ErrValidation)
	}
	return arrival, departure, nil
}

// Nights converts a stay window to billable nights. Partial nights round up
// and a stay shorter than a day still bills one night.
func Nights(arrival, departure time.Time) int {
	nights := int(math.Ceil(departure.Sub(arrival).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// ComputeAmount is the authoritative price: nightly rate times nights times
// the size of the party.
func ComputeAmount(ratePerNight float64, nights, partySize int) float64 {
	return ratePerNight * float64(nights) * float64(partySize)
}
