package reviews

import (
	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewsRoutes(app *fiber.App) {
	reviews := app.Group("/reviews")
	reviews.Use(auth.AuthMiddleware)
	reviews.Get("/", ReviewsPage)

	api := app.Group("/api/reviews")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetReviewsAPI)
	api.Post("/", ScheduleReviewAPI)
}

func ReviewsPage(c *fiber.Ctx) error {
	reviews, err := database.GetReviews(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - Capstone Tracker",
			"CurrentPage":  "reviews",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load reviews. Please try again later.",
		})
	}

	actx := auth.CurrentAuth(c)
	return c.Render("reviews/index", fiber.Map{
		"Title":       "Reviews - Capstone Tracker",
		"CurrentPage": "reviews",
		"reviews":     reviews,
		"Email":       actx.Email,
		"Role":        actx.Role,
	})
}
