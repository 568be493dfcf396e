package evaluations

import (
	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/routes/auth"
	"capstone-management/app/routes/httperr"
	"capstone-management/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetEvaluationsAPI lists a student's evaluations. Students can only read
// their own.
func GetEvaluationsAPI(c *fiber.Ctx) error {
	srn := c.Query("srn")
	if srn == "" {
		return c.Status(400).JSON(fiber.Map{"error": "srn query parameter is required"})
	}

	actx := auth.CurrentAuth(c)
	if !actx.IsFaculty() && !actx.ActsFor(srn) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	evals, err := database.GetEvaluationsForStudent(config.GetDB(), srn)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch evaluations"})
	}
	return c.JSON(fiber.Map{
		"evaluations": evals,
		"count":       len(evals),
	})
}

func SubmitEvaluationAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		FacultyID int     `json:"faculty_id"`
		SRN       string  `json:"srn"`
		RubricID  int     `json:"rubric_id"`
		ReviewID  int     `json:"review_id"`
		Marks     float64 `json:"marks"`
		Comments  *string `json:"comments"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	actx := auth.CurrentAuth(c)
	err := services.SubmitEvaluation(config.GetDB(), actx,
		req.FacultyID, req.SRN, req.RubricID, req.ReviewID, req.Marks, req.Comments)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Evaluation submitted"})
}
