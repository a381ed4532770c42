package accommodation

import (
	"errors"
	"strings"
	"testing"

	"hostel-booking/apperrors"
	"hostel-booking/config"
	accommodationModel "hostel-booking/models/accommodation"
	paymentModel "hostel-booking/models/payment"
	userModel "hostel-booking/models/user"
	"hostel-booking/storage/storagetest"
	"hostel-booking/types"
)

type fakeGateway struct {
	orderID   string
	err       error
	gotAmount int64
	calls     int
}

func (g *fakeGateway) CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error) {
	g.calls++
	g.gotAmount = amountMinorUnits
	if g.err != nil {
		return "", g.err
	}
	return g.orderID, nil
}

type nopMailer struct{}

func (nopMailer) Send(to, subject, html string) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		RatePerNight: 300,
		Currency:     "INR",
	}
}

func validRequest() types.AccommodationCreateRequest {
	return types.AccommodationCreateRequest{
		Name:               "Asha Verma",
		Email:              "asha@example.com",
		Mobile:             "9876543210",
		Gender:             "female",
		IDType:             "aadhaar",
		IDNumber:           "1234-5678-9012",
		Address:            "12 Lake Road, Pune",
		Organization:       "IIT Bombay",
		ArrivalDate:        "2025-01-10",
		DepartureDate:      "2025-01-12",
		NumberOfPeople:     3,
		GuestGenders:       []string{"female", "female", "male"},
		AccommodationType:  "shared",
		TermsAndConditions: true,
	}
}

func verifiedUserStore() *storagetest.FakeStore {
	return &storagetest.FakeStore{
		UserByIDFn: func(id string) (*userModel.User, error) {
			return &userModel.User{ID: id, Verified: true}, nil
		},
		AccommodationExistsForStayFn: func(userID, arrivalDate, departureDate string) (bool, error) {
			return false, nil
		},
	}
}

func TestCreateComputesAmountAndPersistsPendingBooking(t *testing.T) {
	store := verifiedUserStore()
	var created *accommodationModel.Accommodation
	var txn *paymentModel.PaymentTransaction
	store.CreateAccommodationFn = func(a *accommodationModel.Accommodation) error {
		created = a
		return nil
	}
	store.CreatePaymentTransactionFn = func(t *paymentModel.PaymentTransaction) error {
		txn = t
		return nil
	}

	gateway := &fakeGateway{orderID: "order_live_1"}
	svc := NewService(store, gateway, nopMailer{}, testConfig())

	acco, err := svc.Create("user-1", validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// 2 nights x 3 people x 300.
	if acco.Amount != 1800 {
		t.Errorf("Amount = %v, want 1800", acco.Amount)
	}
	if acco.Status != accommodationModel.StatusPendingPayment {
		t.Errorf("Status = %s, want %s", acco.Status, accommodationModel.StatusPendingPayment)
	}
	if acco.Paid {
		t.Error("new booking must not be marked paid")
	}
	if acco.OrderID == nil || *acco.OrderID != "order_live_1" {
		t.Errorf("OrderID = %v, want order_live_1", acco.OrderID)
	}
	if gateway.gotAmount != 180000 {
		t.Errorf("gateway amount = %d paise, want 180000", gateway.gotAmount)
	}

	if created == nil {
		t.Fatal("accommodation was not persisted")
	}
	if txn == nil {
		t.Fatal("payment transaction was not persisted")
	}
	if txn.OrderID != "order_live_1" || txn.Status != paymentModel.StatusCreated {
		t.Errorf("transaction = %s/%s, want order_live_1/created", txn.OrderID, txn.Status)
	}
	if txn.AccommodationID != created.ID {
		t.Error("transaction must reference the created accommodation")
	}
	if txn.Amount != 1800 {
		t.Errorf("transaction amount = %v, want 1800", txn.Amount)
	}
}

func TestCreateBypassSynthesizesDevOrder(t *testing.T) {
	store := verifiedUserStore()
	store.CreateAccommodationFn = func(a *accommodationModel.Accommodation) error { return nil }
	store.CreatePaymentTransactionFn = func(t *paymentModel.PaymentTransaction) error { return nil }

	cfg := testConfig()
	cfg.PaymentBypass = true
	gateway := &fakeGateway{orderID: "order_should_not_be_used"}
	svc := NewService(store, gateway, nopMailer{}, cfg)

	acco, err := svc.Create("user-1", validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if acco.OrderID == nil || !strings.HasPrefix(*acco.OrderID, "dev_order_") {
		t.Errorf("OrderID = %v, want dev_order_ prefix", acco.OrderID)
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times in bypass mode, want 0", gateway.calls)
	}
}

func TestCreateValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.AccommodationCreateRequest)
	}{
		{name: "missing name", mutate: func(r *types.AccommodationCreateRequest) { r.Name = "" }},
		{name: "bad email", mutate: func(r *types.AccommodationCreateRequest) { r.Email = "not-an-email" }},
		{name: "zero people", mutate: func(r *types.AccommodationCreateRequest) { r.NumberOfPeople = 0 }},
		{name: "terms not accepted", mutate: func(r *types.AccommodationCreateRequest) { r.TermsAndConditions = false }},
		{name: "guest genders mismatch", mutate: func(r *types.AccommodationCreateRequest) {
			r.GuestGenders = []string{"female"}
		}},
		{name: "departure before arrival", mutate: func(r *types.AccommodationCreateRequest) {
			r.ArrivalDate = "2025-01-12"
			r.DepartureDate = "2025-01-10"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := verifiedUserStore()
			svc := NewService(store, &fakeGateway{orderID: "order_x"}, nopMailer{}, testConfig())

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create("user-1", req)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("Create() error = %v, want validation error", err)
			}
		})
	}
}

func TestCreateRejectsUnverifiedRequester(t *testing.T) {
	store := verifiedUserStore()
	store.UserByIDFn = func(id string) (*userModel.User, error) {
		return &userModel.User{ID: id, Verified: false}, nil
	}
	svc := NewService(store, &fakeGateway{orderID: "order_x"}, nopMailer{}, testConfig())

	_, err := svc.Create("user-1", validRequest())
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Create() error = %v, want validation error", err)
	}
}

func TestCreateRejectsDuplicateStay(t *testing.T) {
	store := verifiedUserStore()
	store.AccommodationExistsForStayFn = func(userID, arrivalDate, departureDate string) (bool, error) {
		return true, nil
	}
	svc := NewService(store, &fakeGateway{orderID: "order_x"}, nopMailer{}, testConfig())

	_, err := svc.Create("user-1", validRequest())
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("Create() error = %v, want conflict error", err)
	}
}

func TestCreateFailsWhenGatewayFails(t *testing.T) {
	store := verifiedUserStore()
	svc := NewService(store, &fakeGateway{err: errors.New("gateway down")}, nopMailer{}, testConfig())

	_, err := svc.Create("user-1", validRequest())
	if err == nil {
		t.Fatal("Create() expected error when gateway fails")
	}
	if errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("gateway failure should not be a validation error, got %v", err)
	}
}
