package reviews

import (
	"time"

	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/routes/auth"
	"capstone-management/app/routes/httperr"
	"capstone-management/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetReviewsAPI(c *fiber.Ctx) error {
	reviews, err := database.GetReviews(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}
	return c.JSON(fiber.Map{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func ScheduleReviewAPI(c *fiber.Ctx) error {
	type ScheduleRequest struct {
		TeamID       int     `json:"team_id"`
		ReviewTypeID int     `json:"review_type_id"`
		Date         string  `json:"date"`
		Venue        *string `json:"venue"`
		PanelIDs     []int   `json:"panel_faculty_ids"`
	}

	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	actx := auth.CurrentAuth(c)
	reviewID, err := services.ScheduleReview(config.GetDB(), actx,
		req.TeamID, req.ReviewTypeID, date, req.Venue, req.PanelIDs)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Review scheduled",
		"review_id": reviewID,
	})
}
