package main

import (
	"encoding/json"
	"log"
	"strings"

	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/routes/auth"
	"capstone-management/app/routes/dashboard"
	"capstone-management/app/routes/evaluations"
	"capstone-management/app/routes/faculty"
	"capstone-management/app/routes/meetings"
	"capstone-management/app/routes/projects"
	"capstone-management/app/routes/reports"
	"capstone-management/app/routes/reviews"
	"capstone-management/app/routes/settings"
	"capstone-management/app/routes/students"
	"capstone-management/app/routes/teams"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders error pages for web requests and JSON for the
// API.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Capstone Tracker",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - Capstone Tracker",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Capstone Tracker",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

// setupApp builds the Fiber app: view engine, middleware, static files, all
// route groups and the trailing catch-all. Route registration does not touch
// the database; handlers resolve it per request.
func setupApp() *fiber.App {
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	faculty.SetupFacultyRoutes(app)
	teams.SetupTeamsRoutes(app)
	projects.SetupProjectsRoutes(app)
	reviews.SetupReviewsRoutes(app)
	evaluations.SetupEvaluationsRoutes(app)
	meetings.SetupMeetingsRoutes(app)
	settings.SetupSettingsRoutes(app)
	reports.SetupReportsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

func main() {
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := setupApp()

	log.Printf("Starting server on :%s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
