package models

// Rubric is a scoring criterion with an upper bound on marks.
type Rubric struct {
	ID       int     `json:"id"`
	Name     string  `json:"name" validate:"required"`
	MaxMarks float64 `json:"max_marks" validate:"required,gt=0"`
}
