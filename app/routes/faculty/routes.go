package faculty

import (
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFacultyRoutes(app *fiber.App) {
	api := app.Group("/api/faculty")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetFacultyAPI)
	api.Get("/:id/dashboard", GetFacultyDashboardAPI)
	api.Get("/:id", GetFacultyByIDAPI)
	api.Post("/", auth.RequireRole(models.RoleAdmin), CreateFacultyAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), DeleteFacultyAPI)
}
