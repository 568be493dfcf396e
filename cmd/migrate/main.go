package main

import (
	"log"

	"capstone-management/app/config"
	"capstone-management/app/database"
)

// Applies the schema without starting the server. Useful for provisioning a
// fresh database.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration completed successfully")
}
