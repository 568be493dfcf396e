package database

import (
	"database/sql"
	"fmt"

	"capstone-management/app/models"

	"github.com/lib/pq"
)

// GetTeams returns every team with mentor and member names resolved.
func GetTeams(db *sql.DB) ([]*models.TeamDetail, error) {
	query := `
		SELECT t.id, t.mentor_id, f.name,
		       COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.srn IS NOT NULL), '{}')
		FROM teams t
		LEFT JOIN faculty f ON t.mentor_id = f.id
		LEFT JOIN team_students ts ON t.id = ts.team_id
		LEFT JOIN students s ON ts.srn = s.srn
		GROUP BY t.id, t.mentor_id, f.name
		ORDER BY t.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.TeamDetail
	for rows.Next() {
		td := &models.TeamDetail{}
		if err := rows.Scan(&td.TeamID, &td.MentorID, &td.MentorName, pq.Array(&td.Members)); err != nil {
			return nil, err
		}
		teams = append(teams, td)
	}
	return teams, rows.Err()
}

// GetTeamByID returns one team row, or sql.ErrNoRows.
func GetTeamByID(db *sql.DB, teamID int) (*models.Team, error) {
	t := &models.Team{}
	err := db.QueryRow(`SELECT id, mentor_id FROM teams WHERE id = $1`, teamID).
		Scan(&t.ID, &t.MentorID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MembersOf returns the SRNs currently on a team.
func MembersOf(db *sql.DB, teamID int) ([]string, error) {
	rows, err := db.Query(`SELECT srn FROM team_students WHERE team_id = $1 ORDER BY srn`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var srns []string
	for rows.Next() {
		var srn string
		if err := rows.Scan(&srn); err != nil {
			return nil, err
		}
		srns = append(srns, srn)
	}
	return srns, rows.Err()
}

// MemberCount returns the current size of a team.
func MemberCount(db *sql.DB, teamID int) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM team_students WHERE team_id = $1`, teamID).Scan(&n)
	return n, err
}

// TeamOf returns the team a student belongs to, or nil if unteamed.
func TeamOf(db *sql.DB, srn string) (*int, error) {
	var teamID int
	err := db.QueryRow(`SELECT team_id FROM team_students WHERE srn = $1`, srn).Scan(&teamID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &teamID, nil
}

// MentorOf returns the team's mentor, or nil if unmentored, or sql.ErrNoRows
// if the team does not exist.
func MentorOf(db *sql.DB, teamID int) (*int, error) {
	var mentorID *int
	err := db.QueryRow(`SELECT mentor_id FROM teams WHERE id = $1`, teamID).Scan(&mentorID)
	if err != nil {
		return nil, err
	}
	return mentorID, nil
}

// AlreadyTeamedOf returns the subset of the given SRNs that already belong to
// a team.
func AlreadyTeamedOf(db *sql.DB, srns []string) ([]string, error) {
	rows, err := db.Query(`SELECT srn FROM team_students WHERE srn = ANY($1) ORDER BY srn`, pq.Array(srns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teamed []string
	for rows.Next() {
		var srn string
		if err := rows.Scan(&srn); err != nil {
			return nil, err
		}
		teamed = append(teamed, srn)
	}
	return teamed, rows.Err()
}

// StudentsExist reports whether every given SRN is a known student.
func StudentsExist(db *sql.DB, srns []string) (bool, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE srn = ANY($1)`, pq.Array(srns)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == len(srns), nil
}

// CreateTeamWithMembers inserts the team row and one membership row per SRN
// in a single transaction.
func CreateTeamWithMembers(db *sql.DB, mentorID *int, srns []string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var teamID int
	err = tx.QueryRow(`INSERT INTO teams (mentor_id) VALUES ($1) RETURNING id`, mentorID).Scan(&teamID)
	if err != nil {
		return 0, err
	}

	for _, srn := range srns {
		if _, err := tx.Exec(`INSERT INTO team_students (team_id, srn) VALUES ($1, $2)`, teamID, srn); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return teamID, nil
}

// AddMemberGuarded inserts a membership row only while the team has a free
// slot and the student is not yet on any team. The guard runs inside the
// INSERT itself so two concurrent joins cannot both fill the last slot.
// Returns the number of rows inserted (0 or 1).
func AddMemberGuarded(db *sql.DB, teamID int, srn string) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO team_students (team_id, srn)
		SELECT $1, $2
		WHERE (SELECT COUNT(*) FROM team_students WHERE team_id = $1) < $3
		  AND NOT EXISTS (SELECT 1 FROM team_students WHERE srn = $2)`,
		teamID, srn, models.MaxTeamSize)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ClaimMentorCAS sets the team's mentor only if no mentor is set. The update
// is conditioned on mentor_id IS NULL so two concurrent claims cannot both
// win. Returns the number of rows updated (0 or 1).
func ClaimMentorCAS(db *sql.DB, teamID, facultyID int) (int64, error) {
	res, err := db.Exec(`UPDATE teams SET mentor_id = $2 WHERE id = $1 AND mentor_id IS NULL`,
		teamID, facultyID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteTeam removes a team; membership, project link and meetings cascade.
func DeleteTeam(db *sql.DB, teamID int) error {
	res, err := db.Exec(`DELETE FROM teams WHERE id = $1`, teamID)
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
