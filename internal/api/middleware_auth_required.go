package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/emotrack/internal/models"
	"github.com/terraincognita07/emotrack/internal/services"
)

const contextUserKey = "current_user"

// AuthRequired resolves the bearer token on every request; nothing is cached
// between requests.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c.Get(fiber.HeaderAuthorization))
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, services.ErrUnauthorized.Error())
	}

	user, err := handler.authService.ResolveCurrentIdentity(rawToken)
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}
