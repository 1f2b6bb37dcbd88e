package api

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the request into payload and runs its rules. The returned
// message is safe to show to the client.
func parseBody(c *fiber.Ctx, payload validation.Validatable) (string, bool) {
	if err := c.BodyParser(payload); err != nil {
		return errMessageInvalidBody, false
	}
	if err := payload.Validate(); err != nil {
		return err.Error(), false
	}
	return "", true
}
