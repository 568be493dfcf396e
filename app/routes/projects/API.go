package projects

import (
	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"
	"capstone-management/app/routes/httperr"
	"capstone-management/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetProjectsAPI(c *fiber.Ctx) error {
	projects, err := database.GetProjects(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	return c.JSON(fiber.Map{
		"projects": projects,
		"count":    len(projects),
	})
}

func CreateProjectAPI(c *fiber.Ctx) error {
	type CreateProjectRequest struct {
		TeamID      int    `json:"team_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	actx := auth.CurrentAuth(c)
	projectID, err := services.AssignProject(config.GetDB(), actx, req.TeamID, req.Title, req.Description)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Project created and assigned",
		"project_id": projectID,
	})
}

// ReassignProjectAPI relinks a team to an existing project, replacing any
// previous link on either side.
func ReassignProjectAPI(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team id"})
	}

	type ReassignRequest struct {
		ProjectID int `json:"project_id"`
	}
	var req ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	actx := auth.CurrentAuth(c)
	if err := services.ReassignProject(config.GetDB(), actx, teamID, req.ProjectID); err != nil {
		return httperr.JSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "Project reassigned", "team_id": teamID})
}

func UpdateProjectStatusAPI(c *fiber.Ctx) error {
	actx := auth.CurrentAuth(c)
	if !actx.IsFaculty() {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	projectID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid project id"})
	}

	type StatusRequest struct {
		Status string `json:"status"`
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Status != models.ProjectOngoing && req.Status != models.ProjectCompleted {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown project status"})
	}

	if err := database.UpdateProjectStatus(config.GetDB(), projectID, req.Status); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Project not found"})
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}
