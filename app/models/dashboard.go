package models

import "time"

// AdminViewRow is one row of the admin oversight view: every project joined
// against its team and that team's scheduled reviews.
type AdminViewRow struct {
	ProjectID     int        `json:"project_id"`
	ProjectTitle  string     `json:"project_title"`
	ProjectStatus string     `json:"project_status"`
	TeamID        int        `json:"team_id"`
	MentorName    *string    `json:"mentor_name"`
	ReviewID      *int       `json:"review_id"`
	ReviewName    *string    `json:"review_name"`
	ReviewDate    *time.Time `json:"review_date"`
	Venue         *string    `json:"venue"`
}

// MentorWorkloadRow is one row of the mentor workload report.
type MentorWorkloadRow struct {
	FacultyID   int    `json:"faculty_id"`
	FacultyName string `json:"faculty_name"`
	TeamID      int    `json:"team_id"`
	TeamSize    int    `json:"team_size"`
}
