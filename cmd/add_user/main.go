package main

import (
	"flag"
	"log"
	"strconv"

	"capstone-management/app/config"
	"capstone-management/app/database"
	"capstone-management/app/models"
	"capstone-management/app/routes/auth"

	"github.com/google/uuid"
)

// Creates a login account from the command line, typically the first admin.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	role := flag.String("role", models.RoleAdmin, "admin, faculty or student")
	srn := flag.String("srn", "", "SRN for student accounts")
	facultyID := flag.String("faculty-id", "", "faculty id for faculty accounts")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    *email,
		Password: hash,
		Role:     *role,
	}
	if *srn != "" {
		user.SRN = srn
	}
	if *facultyID != "" {
		id, err := strconv.Atoi(*facultyID)
		if err != nil {
			log.Fatal("Invalid faculty id:", err)
		}
		user.FacultyID = &id
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}
	log.Printf("Created %s account %s (%s)", user.Role, user.Email, user.ID)
}
