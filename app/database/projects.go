package database

import (
	"database/sql"
	"fmt"

	"capstone-management/app/models"
)

// GetProjects returns every project with its owning team, if linked.
func GetProjects(db *sql.DB) ([]*models.ProjectDetail, error) {
	query := `
		SELECT p.id, p.title, p.description, p.status, tp.team_id
		FROM projects p
		LEFT JOIN team_projects tp ON p.id = tp.project_id
		ORDER BY p.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.ProjectDetail
	for rows.Next() {
		pd := &models.ProjectDetail{}
		if err := rows.Scan(&pd.ID, &pd.Title, &pd.Description, &pd.Status, &pd.TeamID); err != nil {
			return nil, err
		}
		projects = append(projects, pd)
	}
	return projects, rows.Err()
}

// ProjectOf returns the project linked to a team, or nil if none.
func ProjectOf(db *sql.DB, teamID int) (*int, error) {
	var projectID int
	err := db.QueryRow(`SELECT project_id FROM team_projects WHERE team_id = $1`, teamID).Scan(&projectID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &projectID, nil
}

// ProjectExists reports whether a project row exists.
func ProjectExists(db *sql.DB, projectID int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists)
	return exists, err
}

// CreateProjectForTeam inserts the project row and its team link in one
// transaction. The unique constraint on team_projects.team_id makes a second
// assignment fail with a unique violation, which the caller maps to a rule
// error.
func CreateProjectForTeam(db *sql.DB, teamID int, title, description string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var projectID int
	err = tx.QueryRow(`INSERT INTO projects (title, description) VALUES ($1, $2) RETURNING id`,
		title, description).Scan(&projectID)
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`INSERT INTO team_projects (team_id, project_id) VALUES ($1, $2)`,
		teamID, projectID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return projectID, nil
}

// ReplaceTeamProject drops any existing link for the team and for the target
// project, then links the two, all in one transaction.
func ReplaceTeamProject(db *sql.DB, teamID, projectID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM team_projects WHERE team_id = $1 OR project_id = $2`,
		teamID, projectID); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO team_projects (team_id, project_id) VALUES ($1, $2)`,
		teamID, projectID); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateProjectStatus sets a project's status.
func UpdateProjectStatus(db *sql.DB, projectID int, status string) error {
	res, err := db.Exec(`UPDATE projects SET status = $2 WHERE id = $1`, projectID, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
