package students

import (
	"database/sql"

	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	srn := c.Params("srn")
	student, err := database.GetStudentBySRN(config.GetDB(), srn)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Student created", "srn": student.SRN})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	student.SRN = c.Params("srn")
	if err := validate.Struct(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.UpdateStudent(config.GetDB(), &student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(fiber.Map{"message": "Student updated"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	srn := c.Params("srn")
	if err := database.DeleteStudent(config.GetDB(), srn); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}

// GetStudentDashboardAPI assembles the student home view: team/project/mentor
// block, evaluations, and running total. Students can only read their own.
func GetStudentDashboardAPI(c *fiber.Ctx) error {
	srn := c.Params("srn")

	actx := auth.CurrentAuth(c)
	if !actx.IsFaculty() && !actx.ActsFor(srn) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	db := config.GetDB()
	dashboard := &models.StudentDashboard{Evaluations: []*models.EvaluationDetail{}}

	info, err := database.GetStudentTeamInfo(db, srn)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team info"})
	}
	dashboard.TeamInfo = info

	// Unteamed students have nothing else to show.
	if info == nil {
		return c.JSON(dashboard)
	}

	evals, err := database.GetEvaluationsForStudent(db, srn)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch evaluations"})
	}
	if evals != nil {
		dashboard.Evaluations = evals
	}

	total, err := database.StudentTotalMarks(db, srn)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute total marks"})
	}
	dashboard.TotalMarks = total

	return c.JSON(dashboard)
}
