package reports

import (
	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/routes/auth"
	"capstone-management/app/routes/httperr"
	"capstone-management/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetMentorWorkloadAPI(c *fiber.Ctx) error {
	report, err := database.GetMentorWorkload(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch mentor workload"})
	}
	return c.JSON(fiber.Map{
		"workload": report,
		"count":    len(report),
	})
}

func GetStudentMarksAPI(c *fiber.Ctx) error {
	srn := c.Params("srn")

	actx := auth.CurrentAuth(c)
	total, err := services.TotalMarks(config.GetDB(), actx, srn)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.JSON(fiber.Map{"srn": srn, "total_marks": total})
}

func GetTeamAverageAPI(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("team_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team id"})
	}
	reviewID, err := c.ParamsInt("review_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid review id"})
	}

	actx := auth.CurrentAuth(c)
	avg, err := services.TeamAverage(config.GetDB(), actx, teamID, reviewID)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.JSON(fiber.Map{
		"team_id":       teamID,
		"review_id":     reviewID,
		"average_marks": avg,
	})
}
