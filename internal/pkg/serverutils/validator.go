package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into out and runs struct validation.
// Returns a 400 HTTPError describing the first batch of failed fields.
func ValidateRequest(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return NewBadRequestError("invalid request body")
	}

	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
			}
			return NewBadRequestError(strings.Join(messages, "; "))
		}
		return NewBadRequestError("invalid request body")
	}

	return nil
}
