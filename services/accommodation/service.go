// Package accommodation implements booking intake: validation, server-side
// pricing, gateway order creation and the initial pending record.
package accommodation

import (
	"fmt"
	"time"

	"hostel-booking/apperrors"
	"hostel-booking/config"
	"hostel-booking/httpServices/mailer"
	"hostel-booking/logger"
	accommodationModel "hostel-booking/models/accommodation"
	paymentModel "hostel-booking/models/payment"
	"hostel-booking/storage"
	"hostel-booking/types"
	"hostel-booking/utils"

	"github.com/google/uuid"
)

// OrderCreator is the slice of the payment gateway intake needs.
type OrderCreator interface {
	CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error)
}

// Mailer sends best-effort notification email.
type Mailer interface {
	Send(to, subject, html string) error
}

type Service struct {
	store   storage.Store
	gateway OrderCreator
	mailer  Mailer
	cfg     *config.Config
}

func NewService(store storage.Store, gateway OrderCreator, m Mailer, cfg *config.Config) *Service {
	return &Service{store: store, gateway: gateway, mailer: m, cfg: cfg}
}

// Create validates the booking request, computes the amount, registers a
// payment order and persists the accommodation as pending payment together
// with its audit transaction row. The returned record carries the order id
// the client needs to start the payment.
func (s *Service) Create(userID string, req types.AccommodationCreateRequest) (*accommodationModel.Accommodation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if !req.TermsAndConditions {
		return nil, fmt.Errorf("%w: terms and conditions must be accepted", apperrors.ErrValidation)
	}
	if len(req.GuestGenders) != 0 && len(req.GuestGenders) != req.NumberOfPeople {
		return nil, fmt.Errorf("%w: guest genders must match the number of people", apperrors.ErrValidation)
	}

	requester, err := s.store.UserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: requester not found", apperrors.ErrValidation)
	}
	if !requester.Verified {
		return nil, fmt.Errorf("%w: requester is not verified", apperrors.ErrValidation)
	}

	arrival, departure, err := ParseStayWindow(req.ArrivalDate, req.DepartureDate)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.AccommodationExistsForStay(userID, req.ArrivalDate, req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: a booking for this stay already exists", apperrors.ErrConflict)
	}

	nights := Nights(arrival, departure)
	amount := ComputeAmount(s.cfg.RatePerNight, nights, req.NumberOfPeople)

	accommodationID := uuid.NewString()
	orderID, err := s.createOrder(accommodationID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	acco := &accommodationModel.Accommodation{
		ID:                 accommodationID,
		UserID:             userID,
		Name:               req.Name,
		Email:              req.Email,
		Mobile:             req.Mobile,
		DOB:                req.DOB,
		Gender:             req.Gender,
		IDType:             req.IDType,
		IDNumber:           req.IDNumber,
		Address:            req.Address,
		Organization:       req.Organization,
		ArrivalDate:        req.ArrivalDate,
		DepartureDate:      req.DepartureDate,
		NumberOfPeople:     req.NumberOfPeople,
		GuestGenders:       req.GuestGenders,
		AccommodationType:  req.AccommodationType,
		AccommodationDates: fmt.Sprintf("%s to %s", req.ArrivalDate, req.DepartureDate),
		Amount:             amount,
		EventName:          req.EventName,
		Status:             accommodationModel.StatusPendingPayment,
		Paid:               false,
		OrderID:            &orderID,
		TermsAndConditions: req.TermsAndConditions,
	}

	txn := &paymentModel.PaymentTransaction{
		ID:              uuid.NewString(),
		AccommodationID: accommodationID,
		OrderID:         orderID,
		Amount:          amount,
		Currency:        s.cfg.Currency,
		Status:          paymentModel.StatusCreated,
	}

	err = s.store.InTransaction(func(tx storage.Store) error {
		if err := tx.CreateAccommodation(acco); err != nil {
			return fmt.Errorf("failed to create accommodation: %w", err)
		}
		if err := tx.CreatePaymentTransaction(txn); err != nil {
			return fmt.Errorf("failed to create payment transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.sendBookingReceived(acco.Email, acco.Name, orderID, amount)

	return acco, nil
}

// createOrder returns a synthesized order id when the gateway is bypassed,
// otherwise registers the order with Razorpay. Amounts go to the gateway in
// minor units. The accommodation id doubles as the receipt, which Razorpay
// caps at 40 characters.
func (s *Service) createOrder(accommodationID string, amount float64) (string, error) {
	if s.cfg.PaymentBypass {
		return fmt.Sprintf("dev_order_%d", time.Now().UnixMilli()), nil
	}
	return s.gateway.CreateOrder(int64(amount*100), s.cfg.Currency, accommodationID)
}

func (s *Service) sendBookingReceived(email, name, orderID string, amount float64) {
	subject, html := mailer.BookingReceived(name, orderID, amount)
	if err := s.mailer.Send(email, subject, html); err != nil {
		logger.Error("Failed to send booking received email", err)
	}
}
