package utils

import (
	"errors"
	"fmt"
	"testing"

	"hostel-booking/apperrors"

	"github.com/gofiber/fiber/v2"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperrors.ErrValidation, want: fiber.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("%w: bad field", apperrors.ErrValidation), want: fiber.StatusBadRequest},
		{name: "not found", err: apperrors.ErrNotFound, want: fiber.StatusNotFound},
		{name: "conflict", err: apperrors.ErrConflict, want: fiber.StatusConflict},
		{name: "capacity", err: apperrors.ErrCapacity, want: fiber.StatusConflict},
		{name: "precondition", err: apperrors.ErrPrecondition, want: fiber.StatusPreconditionFailed},
		{name: "payment verification", err: apperrors.ErrPaymentVerification, want: fiber.StatusUnprocessableEntity},
		{name: "unknown", err: errors.New("boom"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForError(tt.err); got != tt.want {
				t.Errorf("StatusForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Count int    `validate:"min=1"`
	}

	if err := ValidateStruct(payload{Email: "a@b.com", Count: 2}); err != nil {
		t.Errorf("ValidateStruct() error = %v, want nil", err)
	}

	err := ValidateStruct(payload{Email: "nope", Count: 0})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("ValidateStruct() error = %v, want validation error", err)
	}
}
