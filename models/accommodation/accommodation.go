package accommodation

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"hostel-booking/models/user"
)

// Accommodation is one accommodation request: a requester, the guest party
// and a stay window. Amount is always server-computed at intake; payment
// references are filled in by the gateway round-trip.
type Accommodation struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Foreign key for users relationship
	UserID string    `gorm:"type:uuid;not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	Mobile       string `gorm:"type:varchar(20);not null" json:"mobile"`
	DOB          string `gorm:"type:varchar(32)" json:"dob"`
	Gender       string `gorm:"type:varchar(20);not null" json:"gender"`
	IDType       string `gorm:"type:varchar(64);not null" json:"id_type"`
	IDNumber     string `gorm:"type:varchar(128);not null" json:"id_number"`
	Address      string `gorm:"type:text;not null" json:"address"`
	Organization string `gorm:"type:varchar(255);not null" json:"organization"`

	ArrivalDate   string `gorm:"type:varchar(64);not null" json:"arrival_date"`
	DepartureDate string `gorm:"type:varchar(64);not null" json:"departure_date"`

	NumberOfPeople int `gorm:"not null" json:"number_of_people"`

	// Genders for each guest; the first guest is the primary applicant.
	GuestGenders StringSlice `gorm:"type:json" json:"guest_genders,omitempty"`

	AccommodationType  string  `gorm:"type:varchar(64);not null" json:"accommodation_type"`
	AccommodationDates string  `gorm:"type:varchar(128);not null" json:"accommodation_dates"`
	Amount             float64 `gorm:"not null" json:"amount"`
	EventName          *string `gorm:"type:varchar(255)" json:"event_name,omitempty"`

	Status AccommodationStatus `gorm:"type:varchar(32);not null;default:pending_payment" json:"status"`
	Paid   bool                `gorm:"default:false" json:"paid"`

	OrderID *string `gorm:"type:varchar(255);index" json:"order_id,omitempty"`
	// PaymentID and PaymentSignature are set only after a verified payment.
	// The signature is stored AES-GCM encrypted.
	PaymentID        *string `gorm:"type:varchar(255)" json:"payment_id,omitempty"`
	PaymentSignature *string `gorm:"type:text" json:"-"`

	TermsAndConditions bool `gorm:"default:false" json:"terms_and_conditions"`

	CheckInAt  *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt *time.Time `json:"check_out_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StringSlice stores a slice of strings as a JSON column.
type StringSlice []string

// Scan implements the Scanner interface for database deserialization.
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver Valuer interface for database serialization.
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
