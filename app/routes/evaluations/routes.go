package evaluations

import (
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEvaluationsRoutes(app *fiber.App) {
	api := app.Group("/api/evaluations")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEvaluationsAPI)
	api.Post("/", SubmitEvaluationAPI)
}
