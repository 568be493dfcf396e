package teams

import (
	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamsRoutes(app *fiber.App) {
	teams := app.Group("/teams")
	teams.Use(auth.AuthMiddleware)
	teams.Get("/", TeamsPage)

	api := app.Group("/api/teams")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTeamsAPI)
	api.Post("/", CreateTeamAPI)
	api.Get("/:id/members", GetTeamMembersAPI)
	api.Post("/:id/members", JoinTeamAPI)
	api.Post("/:id/mentor", ClaimMentorAPI)
	api.Delete("/:id", DeleteTeamAPI)
}

func TeamsPage(c *fiber.Ctx) error {
	teams, err := database.GetTeams(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - Capstone Tracker",
			"CurrentPage":  "teams",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load teams. Please try again later.",
		})
	}

	actx := auth.CurrentAuth(c)
	return c.Render("teams/index", fiber.Map{
		"Title":       "Teams - Capstone Tracker",
		"CurrentPage": "teams",
		"teams":       teams,
		"Email":       actx.Email,
		"Role":        actx.Role,
	})
}
