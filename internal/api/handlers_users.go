package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/emotrack/internal/models"
	"github.com/terraincognita07/emotrack/internal/services"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.userService.List(currentUser(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapViews(users, newUserView))
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, err := handler.userService.Get(currentUser(c), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newUserView(user))
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	if _, ok := models.ParseID(c.Params("id")); !ok {
		return apiError(c, fiber.StatusBadRequest, services.ErrInvalidID.Error())
	}

	payload := userPayload{}
	if message, ok := parseBody(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.userService.Update(currentUser(c), c.Params("id"), payload.input()); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"mensagem": "Atualizado"})
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := handler.userService.Delete(currentUser(c), c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
