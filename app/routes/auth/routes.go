package auth

import (
	"strings"

	"capstone-management/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
	auth.Post("/register", RequireRole(models.RoleAdmin), RegisterAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Capstone Tracker",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	actx := CurrentAuth(c)
	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - Capstone Tracker",
		"CurrentPage": "profile",
		"Email":       actx.Email,
		"Role":        actx.Role,
	})
}

// AuthMiddleware validates the JWT and stores the caller's AuthContext in
// locals. API requests get 401 JSON; page requests redirect to login.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	tokenString = c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("auth", AuthContextFrom(claims))
	return c.Next()
}

// RequireRole guards a route behind one or more roles. Admin passes every
// check.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actx := CurrentAuth(c)
		if actx.IsAdmin() {
			return c.Next()
		}
		for _, role := range roles {
			if actx.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}

// CurrentAuth returns the caller's AuthContext set by AuthMiddleware.
func CurrentAuth(c *fiber.Ctx) models.AuthContext {
	if actx, ok := c.Locals("auth").(models.AuthContext); ok {
		return actx
	}
	return models.AuthContext{}
}
