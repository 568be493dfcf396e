package students

import (
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Get("/:srn/dashboard", GetStudentDashboardAPI)
	api.Get("/:srn", GetStudentAPI)
	api.Post("/", auth.RequireRole(models.RoleAdmin), CreateStudentAPI)
	api.Put("/:srn", auth.RequireRole(models.RoleAdmin), UpdateStudentAPI)
	api.Delete("/:srn", auth.RequireRole(models.RoleAdmin), DeleteStudentAPI)
}
