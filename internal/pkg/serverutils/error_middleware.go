package serverutils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"telehealth-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors returned by handlers into the
// uniform JSON error envelope. Unrecognized errors become a 500 with a
// generic message so internals never leak to clients.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "something went wrong, please try again later"

		var httpErr *HTTPError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = httpErr.Message
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case strings.Contains(err.Error(), "API_KEY"):
			// Misconfigured LLM credentials surface here; tell the operator,
			// not the patient.
			message = "assistant is unavailable, please contact support"
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"path":   c.Path(),
				"method": c.Method(),
				"error":  err.Error(),
			})
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"code":    code,
			"message": message,
		})
	}
}
