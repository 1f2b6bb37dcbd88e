package api

import "github.com/gofiber/fiber/v2"

const apiPrefix = "/api/v1"

// RegisterRoutes mounts the health probe at the root and every resource under
// apiPrefix. The not-found fallback must stay last.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	v1 := app.Group(apiPrefix)

	auth := v1.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/token", handler.IssueToken)

	v1.Get("/me", handler.AuthRequired, handler.Me)

	users := v1.Group("/users", handler.AuthRequired)
	users.Get("", handler.ListUsers)
	users.Get("/:id", handler.GetUser)
	users.Put("/:id", handler.UpdateUser)
	users.Delete("/:id", handler.DeleteUser)

	diaries := v1.Group("/diaries", handler.AuthRequired)
	diaries.Post("", handler.CreateDiary)
	diaries.Get("/user/:user_id", handler.ListDiaries)

	emotions := v1.Group("/emotions", handler.AuthRequired)
	emotions.Post("", handler.CreateEmotion)
	emotions.Get("/user/:user_id", handler.ListEmotions)

	supportCenters := v1.Group("/supportcenters", handler.AuthRequired)
	supportCenters.Post("", handler.CreateSupportCenter)

	assessments := v1.Group("/assessments", handler.AuthRequired)
	assessments.Post("", handler.CreateAssessment)
	assessments.Get("/user/:user_id", handler.ListAssessments)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
