package middleware

import (
	"hostel-booking/logger"
	"hostel-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger persists every request/response pair through the async
// logger. The entry is deep copied before it leaves the handler so fiber can
// recycle its buffers.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		asyncLogger.Log(utils.CreateSanitizedLogEntry(c))
		return err
	}
}
