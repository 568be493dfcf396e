package database

import (
	"database/sql"
	"time"

	"capstone-management/app/models"
)

// InsertMeeting logs a mentor meeting and returns its id.
func InsertMeeting(db *sql.DB, facultyID, teamID int, at time.Time, feedback *string) (int, error) {
	var id int
	err := db.QueryRow(`
		INSERT INTO meetings (faculty_id, team_id, meeting_at, feedback)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		facultyID, teamID, at, feedback).Scan(&id)
	return id, err
}

// GetMeetingsForTeam returns a team's logged meetings, newest first.
func GetMeetingsForTeam(db *sql.DB, teamID int) ([]*models.Meeting, error) {
	rows, err := db.Query(`
		SELECT id, faculty_id, team_id, meeting_at, feedback
		FROM meetings WHERE team_id = $1
		ORDER BY meeting_at DESC`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		m := &models.Meeting{}
		if err := rows.Scan(&m.ID, &m.FacultyID, &m.TeamID, &m.MeetingAt, &m.Feedback); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}
