package models

// Faculty is a faculty member who can mentor teams and sit on review panels.
type Faculty struct {
	ID    int    `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// FacultyDashboard aggregates a faculty member's mentored teams and the
// reviews they are paneled on.
type FacultyDashboard struct {
	MentoredTeams []*MentoredTeam `json:"mentored_teams"`
	PanelReviews  []*PanelReview  `json:"panel_reviews"`
}

type MentoredTeam struct {
	TeamID   int      `json:"team_id"`
	Students []string `json:"students"`
}

type PanelReview struct {
	ReviewID     int     `json:"review_id"`
	ReviewName   string  `json:"review_name"`
	Date         string  `json:"date"`
	Venue        *string `json:"venue"`
	TeamID       int     `json:"team_id"`
	ProjectTitle *string `json:"project_title"`
}
