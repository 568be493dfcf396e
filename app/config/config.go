package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret []byte
	Port      string
}

var AppConfig *Config

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the Postgres connection pool and fails fast if the database
// is unreachable. DATABASE_URL wins; otherwise discrete PG* variables are
// assembled into a DSN.
func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := envOr("PGHOST", "localhost")
		port, err := strconv.Atoi(envOr("PGPORT", "5432"))
		if err != nil {
			log.Fatal("Invalid PGPORT:", err)
		}
		user := envOr("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := envOr("PGDATABASE", "capstone")

		dsn = fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable connect_timeout=10",
			host, port, user, dbname)
		if password != "" {
			dsn += " password=" + password
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: []byte(envOr("JWT_SECRET", "capstone-dev-secret")),
		Port:      envOr("PORT", "8080"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
