package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hostel-booking/apperrors"
	"hostel-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDFromContext returns the authenticated user's id from the JWT claims
// the auth middleware stored on the request.
func UserIDFromContext(c *fiber.Ctx) (string, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("no authenticated user on request")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user id not found in token")
	}
	return userID, nil
}

// RoleFromContext returns the authenticated user's role, or an empty string
// when the request carries no claims.
func RoleFromContext(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// StatusForError maps the service error taxonomy onto HTTP status codes.
// Unrecognized errors fall through to 500.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrCapacity):
		return fiber.StatusConflict
	case errors.Is(err, apperrors.ErrPrecondition):
		return fiber.StatusPreconditionFailed
	case errors.Is(err, apperrors.ErrPaymentVerification):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponse writes a service error as a JSON response with the status
// code its taxonomy maps to.
func ErrorResponse(c *fiber.Ctx, err error) error {
	status := StatusForError(err)
	return c.Status(status).JSON(types.ApiResponse{
		Message: err.Error(),
		Status:  status,
	})
}

var sensitiveFields = []string{"password", "signature", "payment_signature", "id_number"}

// sanitizeRequestBody redacts credential-bearing fields and truncates large
// payloads before the body is persisted to the request log.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(c.Body())
	if body == "" {
		return body
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(body), &parsed); err == nil {
		redacted := false
		for key := range parsed {
			for _, field := range sensitiveFields {
				if strings.EqualFold(key, field) {
					parsed[key] = "[REDACTED]"
					redacted = true
				}
			}
		}
		if redacted {
			if sanitized, err := json.Marshal(parsed); err == nil {
				body = string(sanitized)
			}
		}
	}

	if len(body) > 4096 {
		return "[LARGE_REQUEST_BODY]"
	}
	return body
}

// CreateSanitizedLogEntry deep copies the request/response data into a log
// entry so the async logger never holds references into fiber's recycled
// buffers.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
