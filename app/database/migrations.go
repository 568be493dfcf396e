package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Statements are
// idempotent so the server can run them on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS students (
			srn        TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE,
			sem        INT  NOT NULL CHECK (sem BETWEEN 1 AND 8),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS faculty (
			id    SERIAL PRIMARY KEY,
			name  TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id        SERIAL PRIMARY KEY,
			mentor_id INT REFERENCES faculty(id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS team_students (
			team_id INT  NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			srn     TEXT NOT NULL UNIQUE REFERENCES students(srn) ON DELETE CASCADE,
			PRIMARY KEY (team_id, srn)
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id          SERIAL PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'Ongoing'
		)`,
		`CREATE TABLE IF NOT EXISTS team_projects (
			team_id    INT NOT NULL UNIQUE REFERENCES teams(id) ON DELETE CASCADE,
			project_id INT NOT NULL UNIQUE REFERENCES projects(id) ON DELETE CASCADE,
			PRIMARY KEY (team_id, project_id)
		)`,
		`CREATE TABLE IF NOT EXISTS review_types (
			id   SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id             SERIAL PRIMARY KEY,
			review_type_id INT NOT NULL REFERENCES review_types(id),
			team_id        INT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			review_date    DATE NOT NULL,
			venue          TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS review_panels (
			review_id  INT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
			faculty_id INT NOT NULL REFERENCES faculty(id) ON DELETE CASCADE,
			PRIMARY KEY (review_id, faculty_id)
		)`,
		`CREATE TABLE IF NOT EXISTS rubrics (
			id        SERIAL PRIMARY KEY,
			name      TEXT NOT NULL UNIQUE,
			max_marks NUMERIC(6,2) NOT NULL CHECK (max_marks > 0)
		)`,
		`CREATE TABLE IF NOT EXISTS evaluations (
			faculty_id INT  NOT NULL REFERENCES faculty(id),
			srn        TEXT NOT NULL REFERENCES students(srn) ON DELETE CASCADE,
			rubric_id  INT  NOT NULL REFERENCES rubrics(id),
			project_id INT  NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			review_id  INT  NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
			marks      NUMERIC(6,2) NOT NULL,
			comments   TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (srn, rubric_id, review_id)
		)`,
		`CREATE TABLE IF NOT EXISTS meetings (
			id         SERIAL PRIMARY KEY,
			faculty_id INT NOT NULL REFERENCES faculty(id),
			team_id    INT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			meeting_at TIMESTAMPTZ NOT NULL,
			feedback   TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id         UUID PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			password   TEXT NOT NULL,
			role       TEXT NOT NULL CHECK (role IN ('admin', 'faculty', 'student')),
			srn        TEXT REFERENCES students(srn) ON DELETE CASCADE,
			faculty_id INT REFERENCES faculty(id) ON DELETE CASCADE,
			is_active  BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_team ON reviews(team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_srn ON evaluations(srn)`,
		`CREATE INDEX IF NOT EXISTS idx_meetings_team ON meetings(team_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
