package teams

import (
	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"
	"capstone-management/app/routes/httperr"
	"capstone-management/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetTeamsAPI(c *fiber.Ctx) error {
	teams, err := database.GetTeams(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teams"})
	}
	return c.JSON(fiber.Map{
		"teams": teams,
		"count": len(teams),
	})
}

func CreateTeamAPI(c *fiber.Ctx) error {
	type CreateTeamRequest struct {
		StudentSRNs []string `json:"student_srns"`
		MentorID    *int     `json:"mentor_id"`
	}

	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	actx := auth.CurrentAuth(c)
	teamID, err := services.FormTeam(config.GetDB(), actx, req.StudentSRNs, req.MentorID)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Team created",
		"team_id": teamID,
	})
}

func GetTeamMembersAPI(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team id"})
	}

	members, err := database.MembersOf(config.GetDB(), teamID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch members"})
	}
	return c.JSON(fiber.Map{"team_id": teamID, "members": members})
}

func JoinTeamAPI(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team id"})
	}

	type JoinRequest struct {
		SRN string `json:"srn"`
	}
	var req JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	actx := auth.CurrentAuth(c)
	if err := services.JoinTeam(config.GetDB(), actx, req.SRN, teamID); err != nil {
		return httperr.JSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "Joined team", "team_id": teamID})
}

func ClaimMentorAPI(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team id"})
	}

	type ClaimRequest struct {
		FacultyID int `json:"faculty_id"`
	}
	var req ClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	actx := auth.CurrentAuth(c)
	if err := services.ClaimMentor(config.GetDB(), actx, teamID, req.FacultyID); err != nil {
		return httperr.JSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "Mentor assigned", "team_id": teamID})
}

// DeleteTeamAPI removes a team; admin only. Membership, project link and
// meetings cascade in the store.
func DeleteTeamAPI(c *fiber.Ctx) error {
	actx := auth.CurrentAuth(c)
	if actx.Role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team id"})
	}

	if err := database.DeleteTeam(config.GetDB(), teamID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Team not found"})
	}
	return c.JSON(fiber.Map{"message": "Team deleted"})
}
