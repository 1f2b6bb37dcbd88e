package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/emotrack/internal/services"
)

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, services.ErrNotFound.Error())
}
