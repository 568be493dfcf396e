package meetings

import (
	"time"

	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/routes/auth"
	"capstone-management/app/routes/httperr"
	"capstone-management/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetMeetingsAPI(c *fiber.Ctx) error {
	teamID := c.QueryInt("team_id", 0)
	if teamID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "team_id query parameter is required"})
	}

	meetings, err := database.GetMeetingsForTeam(config.GetDB(), teamID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch meetings"})
	}
	return c.JSON(fiber.Map{
		"meetings": meetings,
		"count":    len(meetings),
	})
}

func LogMeetingAPI(c *fiber.Ctx) error {
	type LogRequest struct {
		FacultyID int     `json:"faculty_id"`
		TeamID    int     `json:"team_id"`
		DateTime  string  `json:"datetime"`
		Feedback  *string `json:"feedback"`
	}

	var req LogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	at, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "datetime must be RFC 3339"})
	}

	actx := auth.CurrentAuth(c)
	meetingID, err := services.LogMeeting(config.GetDB(), actx, req.FacultyID, req.TeamID, at, req.Feedback)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Meeting logged",
		"meeting_id": meetingID,
	})
}
