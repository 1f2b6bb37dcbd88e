package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/emotrack/internal/metrics"
	"github.com/terraincognita07/emotrack/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	payload := userPayload{}
	if message, ok := parseBody(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user, err := handler.authService.Register(payload.input())
	if err != nil {
		return respondServiceError(c, err)
	}
	return created(c, user.ID)
}

// IssueToken takes the password-grant form fields username and password.
func (handler *Handler) IssueToken(c *fiber.Ctx) error {
	payload := tokenPayload{}
	if message, ok := parseBody(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	limiterKey := loginLimiterKey(c, payload.Username)
	if handler.loginLimiter.blocked(limiterKey, handler.now()) {
		handler.observeLogin(metrics.LoginRejected)
		return apiError(c, fiber.StatusTooManyRequests, errMessageTooManyTries)
	}

	token, err := handler.authService.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.recordFailure(limiterKey, handler.now())
			handler.observeLogin(metrics.LoginRejected)
		} else {
			handler.observeLogin(metrics.LoginFailed)
		}
		return respondServiceError(c, err)
	}

	handler.loginLimiter.clear(limiterKey)
	handler.observeLogin(metrics.LoginSucceeded)
	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, services.ErrUnauthorized.Error())
	}
	return c.JSON(newUserView(*user))
}
