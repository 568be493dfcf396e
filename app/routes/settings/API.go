package settings

import (
	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetRubricsAPI(c *fiber.Ctx) error {
	rubrics, err := database.GetRubrics(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch rubrics"})
	}
	return c.JSON(fiber.Map{
		"rubrics": rubrics,
		"count":   len(rubrics),
	})
}

func CreateRubricAPI(c *fiber.Ctx) error {
	var rubric models.Rubric
	if err := c.BodyParser(&rubric); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&rubric); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	id, err := database.CreateRubric(config.GetDB(), &rubric)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create rubric"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Rubric created", "rubric_id": id})
}

func GetReviewTypesAPI(c *fiber.Ctx) error {
	types, err := database.GetReviewTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch review types"})
	}
	return c.JSON(fiber.Map{
		"review_types": types,
		"count":        len(types),
	})
}

func CreateReviewTypeAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Name string `json:"name" validate:"required"`
	}
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	id, err := database.CreateReviewType(config.GetDB(), req.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create review type"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Review type created", "review_type_id": id})
}
