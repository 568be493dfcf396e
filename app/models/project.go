package models

// Project statuses. New projects start Ongoing.
const (
	ProjectOngoing   = "Ongoing"
	ProjectCompleted = "Completed"
)

// Project is a capstone project. A project is linked to exactly one team
// through team_projects.
type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ProjectDetail is a project with its owning team resolved.
type ProjectDetail struct {
	Project
	TeamID *int `json:"team_id"`
}
