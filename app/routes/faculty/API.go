package faculty

import (
	"database/sql"

	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetFacultyAPI(c *fiber.Ctx) error {
	faculty, err := database.GetFaculty(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}
	return c.JSON(fiber.Map{
		"faculty": faculty,
		"count":   len(faculty),
	})
}

func GetFacultyByIDAPI(c *fiber.Ctx) error {
	facultyID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid faculty id"})
	}

	f, err := database.GetFacultyByID(config.GetDB(), facultyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}
	return c.JSON(f)
}

func CreateFacultyAPI(c *fiber.Ctx) error {
	var f models.Faculty
	if err := c.BodyParser(&f); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&f); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	id, err := database.CreateFaculty(config.GetDB(), &f)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create faculty"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Faculty created", "faculty_id": id})
}

func DeleteFacultyAPI(c *fiber.Ctx) error {
	facultyID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid faculty id"})
	}

	if err := database.DeleteFaculty(config.GetDB(), facultyID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete faculty"})
	}
	return c.JSON(fiber.Map{"message": "Faculty deleted"})
}

// GetFacultyDashboardAPI assembles the faculty home view: mentored teams and
// paneled reviews.
func GetFacultyDashboardAPI(c *fiber.Ctx) error {
	facultyID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid faculty id"})
	}

	db := config.GetDB()
	dashboard := &models.FacultyDashboard{
		MentoredTeams: []*models.MentoredTeam{},
		PanelReviews:  []*models.PanelReview{},
	}

	teams, err := database.MentoredTeamsFor(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch mentored teams"})
	}
	if teams != nil {
		dashboard.MentoredTeams = teams
	}

	panels, err := database.PanelReviewsFor(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch panel reviews"})
	}
	if panels != nil {
		dashboard.PanelReviews = panels
	}

	return c.JSON(dashboard)
}
