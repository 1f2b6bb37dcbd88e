package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/emotrack/internal/services"
)

const (
	errMessageInvalidBody  = "invalid request body"
	errMessageInternal     = "internal server error"
	errMessageTooManyTries = "too many login attempts, try again later"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	if status == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceErrorStatus maps the services error taxonomy onto HTTP. Unknown
// errors are 500 and their text is never sent to the client.
func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return fiber.StatusBadRequest, services.ErrInvalidID.Error()
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest, services.ErrInvalidInput.Error()
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		return fiber.StatusBadRequest, services.ErrEmailAlreadyRegistered.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, services.ErrInvalidCredentials.Error()
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized, services.ErrUnauthorized.Error()
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden, services.ErrForbidden.Error()
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound, services.ErrNotFound.Error()
	default:
		return fiber.StatusInternalServerError, errMessageInternal
	}
}

func respondServiceError(c *fiber.Ctx, err error) error {
	status, message := serviceErrorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	return apiError(c, status, message)
}

func created(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}
