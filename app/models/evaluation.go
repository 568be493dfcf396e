package models

import "time"

// Evaluation is one faculty member's score for one student on one rubric at
// one review. The (SRN, RubricID, ReviewID) triple is unique; resubmission
// overwrites Marks and Comments but keeps the original CreatedAt.
type Evaluation struct {
	FacultyID int       `json:"faculty_id"`
	SRN       string    `json:"srn"`
	RubricID  int       `json:"rubric_id"`
	ProjectID int       `json:"project_id"`
	ReviewID  int       `json:"review_id"`
	Marks     float64   `json:"marks"`
	Comments  *string   `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// EvaluationDetail is an evaluation with names resolved for display.
type EvaluationDetail struct {
	Marks       float64   `json:"marks"`
	Comments    *string   `json:"comments"`
	RubricName  string    `json:"rubric_name"`
	ReviewName  string    `json:"review_name"`
	FacultyName string    `json:"faculty_name"`
	ReviewDate  time.Time `json:"review_date"`
	ReviewVenue *string   `json:"review_venue"`
}
