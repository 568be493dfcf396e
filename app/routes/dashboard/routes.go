package dashboard

import (
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dash := app.Group("/dashboard")
	dash.Use(auth.AuthMiddleware)
	dash.Get("/", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/admin", auth.RequireRole(models.RoleAdmin), GetAdminViewAPI)
}

func DashboardPage(c *fiber.Ctx) error {
	actx := auth.CurrentAuth(c)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Capstone Tracker",
		"CurrentPage": "dashboard",
		"Email":       actx.Email,
		"Role":        actx.Role,
	})
}
