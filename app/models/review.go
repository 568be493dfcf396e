package models

import "time"

// ReviewType is a named stage of review, e.g. "Review 1", "Final Panel".
type ReviewType struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required"`
}

// Review is one scheduled review of a team.
type Review struct {
	ID           int       `json:"id"`
	ReviewTypeID int       `json:"review_type_id"`
	TeamID       int       `json:"team_id"`
	Date         time.Time `json:"date"`
	Venue        *string   `json:"venue"`
}

// ReviewDetail is a review with its type name and panel resolved.
type ReviewDetail struct {
	Review
	ReviewName string `json:"review_name"`
	Panel      []int  `json:"panel"`
}
