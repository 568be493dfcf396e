package auth

import (
	"database/sql"
	"time"

	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}

// RegisterAPI creates a login account linked to a student or faculty record.
// Admin only.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Email     string  `json:"email"`
		Password  string  `json:"password"`
		Role      string  `json:"role"`
		SRN       *string `json:"srn"`
		FacultyID *int    `json:"faculty_id"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Email == "" || len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "Email and a password of at least 8 characters are required"})
	}
	switch req.Role {
	case models.RoleStudent:
		if req.SRN == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Student accounts need an SRN"})
		}
	case models.RoleFaculty:
		if req.FacultyID == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Faculty accounts need a faculty id"})
		}
	case models.RoleAdmin:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Password:  hash,
		Role:      req.Role,
		SRN:       req.SRN,
		FacultyID: req.FacultyID,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "User created", "user_id": user.ID})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "New password must be at least 8 characters"})
	}

	actx := CurrentAuth(c)
	user, err := database.GetUserByID(config.GetDB(), actx.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := database.UpdateUserPassword(config.GetDB(), actx.UserID, hash); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password updated"})
}
