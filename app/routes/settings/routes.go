package settings

import (
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// Rubrics and review types are department-level configuration, managed by
// admins and readable by everyone signed in.
func SetupSettingsRoutes(app *fiber.App) {
	rubrics := app.Group("/api/rubrics")
	rubrics.Use(auth.AuthMiddleware)
	rubrics.Get("/", GetRubricsAPI)
	rubrics.Post("/", auth.RequireRole(models.RoleAdmin), CreateRubricAPI)

	types := app.Group("/api/review-types")
	types.Use(auth.AuthMiddleware)
	types.Get("/", GetReviewTypesAPI)
	types.Post("/", auth.RequireRole(models.RoleAdmin), CreateReviewTypeAPI)
}
