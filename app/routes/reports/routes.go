package reports

import (
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)
	api.Get("/mentor-workload", auth.RequireRole(models.RoleAdmin, models.RoleFaculty), GetMentorWorkloadAPI)
	api.Get("/student-marks/:srn", GetStudentMarksAPI)
	api.Get("/team-average/:team_id/:review_id", GetTeamAverageAPI)
}
