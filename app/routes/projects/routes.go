package projects

import (
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupProjectsRoutes(app *fiber.App) {
	api := app.Group("/api/projects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetProjectsAPI)
	api.Post("/", CreateProjectAPI)
	api.Put("/:id/status", UpdateProjectStatusAPI)

	teamAPI := app.Group("/api/teams")
	teamAPI.Use(auth.AuthMiddleware)
	teamAPI.Put("/:id/project", ReassignProjectAPI)
}
