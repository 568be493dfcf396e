package dashboard

import (
	"capstone-management/app/config"
	"capstone-management/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetAdminViewAPI returns the combined project/review oversight view.
func GetAdminViewAPI(c *fiber.Ctx) error {
	view, err := database.GetAdminView(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch admin view"})
	}
	return c.JSON(fiber.Map{
		"rows":  view,
		"count": len(view),
	})
}
