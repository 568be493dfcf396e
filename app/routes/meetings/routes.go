package meetings

import (
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMeetingsRoutes(app *fiber.App) {
	api := app.Group("/api/meetings")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetMeetingsAPI)
	api.Post("/", LogMeetingAPI)
}
