package payment

import (
	"time"
)

const (
	StatusCreated = "created"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// PaymentTransaction is the append-only audit trail for one payment order.
// One row is created at intake and mutated to success or failed by
// verification; rows are never deleted.
type PaymentTransaction struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	AccommodationID  string    `gorm:"type:uuid;not null;index" json:"accommodation_id"`
	OrderID          string    `gorm:"type:varchar(255);not null;index" json:"order_id"`
	PaymentID        *string   `gorm:"type:varchar(255)" json:"payment_id,omitempty"`
	Signature        *string   `gorm:"type:text" json:"signature,omitempty"`
	Amount           float64   `gorm:"not null" json:"amount"`
	Currency         string    `gorm:"type:varchar(8);not null" json:"currency"`
	Status           string    `gorm:"type:varchar(20);not null" json:"status"`
	Method           *string   `gorm:"type:varchar(64)" json:"method,omitempty"`
	ErrorCode        *string   `gorm:"type:varchar(64)" json:"error_code,omitempty"`
	ErrorDescription *string   `gorm:"type:text" json:"error_description,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}
