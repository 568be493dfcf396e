package models

import "time"

// Student is one enrolled student, identified by SRN.
type Student struct {
	SRN       string    `json:"srn" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Sem       int       `json:"sem" validate:"required,min=1,max=8"`
	CreatedAt time.Time `json:"created_at"`
}

// StudentDashboard aggregates everything a student sees on their home page.
type StudentDashboard struct {
	TeamInfo    *StudentTeamInfo    `json:"team_info"`
	Evaluations []*EvaluationDetail `json:"evaluations"`
	TotalMarks  float64             `json:"total_marks"`
}

// StudentTeamInfo is the team/project/mentor block of the student dashboard.
type StudentTeamInfo struct {
	TeamID        int      `json:"team_id"`
	ProjectTitle  *string  `json:"project_title"`
	ProjectStatus *string  `json:"project_status"`
	MentorName    *string  `json:"mentor_name"`
	Members       []string `json:"members"`
}
