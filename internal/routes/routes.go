package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talenthuntpro/backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	jobRoleHandler *handlers.JobRoleHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Profile and metrics identify the caller by the email in the
	// body; there is no session layer in front of them.
	api.Post("/profile", profileHandler.GetProfile)
	api.Post("/dashboard/metrics", profileHandler.DashboardMetrics)

	api.Get("/job-roles", jobRoleHandler.List)
	api.Get("/job-roles/:role_id", jobRoleHandler.Detail)
}
