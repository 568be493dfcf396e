package database

import (
	"database/sql"

	"capstone-management/app/models"

	"github.com/lib/pq"
)

// GetFaculty returns all faculty ordered by name.
func GetFaculty(db *sql.DB) ([]*models.Faculty, error) {
	rows, err := db.Query(`SELECT id, name, email FROM faculty ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculty []*models.Faculty
	for rows.Next() {
		f := &models.Faculty{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Email); err != nil {
			return nil, err
		}
		faculty = append(faculty, f)
	}
	return faculty, rows.Err()
}

// GetFacultyByID returns one faculty member, or sql.ErrNoRows.
func GetFacultyByID(db *sql.DB, facultyID int) (*models.Faculty, error) {
	f := &models.Faculty{}
	err := db.QueryRow(`SELECT id, name, email FROM faculty WHERE id = $1`, facultyID).
		Scan(&f.ID, &f.Name, &f.Email)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// FacultyExist reports whether every given faculty id exists.
func FacultyExist(db *sql.DB, facultyIDs []int) (bool, error) {
	if len(facultyIDs) == 0 {
		return true, nil
	}
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM faculty WHERE id = ANY($1)`, pq.Array(facultyIDs)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == len(facultyIDs), nil
}

// CreateFaculty inserts a faculty row and returns its id.
func CreateFaculty(db *sql.DB, f *models.Faculty) (int, error) {
	var id int
	err := db.QueryRow(`INSERT INTO faculty (name, email) VALUES ($1, $2) RETURNING id`,
		f.Name, f.Email).Scan(&id)
	return id, err
}

// DeleteFaculty removes a faculty member. Mentored teams keep running with
// mentor_id reset to NULL.
func DeleteFaculty(db *sql.DB, facultyID int) error {
	res, err := db.Exec(`DELETE FROM faculty WHERE id = $1`, facultyID)
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

// MentoredTeamsFor returns the teams mentored by a faculty member with member
// names resolved.
func MentoredTeamsFor(db *sql.DB, facultyID int) ([]*models.MentoredTeam, error) {
	query := `
		SELECT t.id,
		       COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.srn IS NOT NULL), '{}')
		FROM teams t
		LEFT JOIN team_students ts ON t.id = ts.team_id
		LEFT JOIN students s ON ts.srn = s.srn
		WHERE t.mentor_id = $1
		GROUP BY t.id
		ORDER BY t.id`

	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*models.MentoredTeam
	for rows.Next() {
		mt := &models.MentoredTeam{}
		if err := rows.Scan(&mt.TeamID, pq.Array(&mt.Students)); err != nil {
			return nil, err
		}
		teams = append(teams, mt)
	}
	return teams, rows.Err()
}
