package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// HTTPError carries an HTTP status code alongside a client-safe message.
// The error middleware maps it straight onto the response.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(fiber.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *HTTPError {
	return NewHTTPError(fiber.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *HTTPError {
	return NewHTTPError(fiber.StatusForbidden, message)
}

func NewNotFoundError(message string) *HTTPError {
	return NewHTTPError(fiber.StatusNotFound, message)
}

func NewConflictError(message string) *HTTPError {
	return NewHTTPError(fiber.StatusConflict, message)
}

func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": true,
		"code":    code,
		"message": message,
		"data":    data,
	})
}
