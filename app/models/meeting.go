package models

import "time"

// Meeting is a logged mentor meeting with a team. The faculty member must be
// the team's current mentor.
type Meeting struct {
	ID        int       `json:"id"`
	FacultyID int       `json:"faculty_id"`
	TeamID    int       `json:"team_id"`
	MeetingAt time.Time `json:"meeting_at"`
	Feedback  *string   `json:"feedback"`
}
