package services

import (
	"database/sql"
	"time"

	"capstone-management/app/database"
	"capstone-management/app/models"
)

// ScheduleReview creates a review for a team together with its panel. The
// effective panel is the requested faculty plus the team's mentor, if any,
// deduplicated; an empty effective panel is rejected. Review and panel rows
// commit as one transaction.
func ScheduleReview(db *sql.DB, actx models.AuthContext, teamID, reviewTypeID int,
	date time.Time, venue *string, extraPanel []int) (int, error) {

	if !actx.IsFaculty() {
		return 0, forbidden("only faculty can schedule reviews")
	}
	if date.IsZero() {
		return 0, invalidInput("review date is required")
	}

	mentorID, err := database.MentorOf(db, teamID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, notFound("team %d does not exist", teamID)
		}
		return 0, storeError(err)
	}

	exists, err := database.ReviewTypeExists(db, reviewTypeID)
	if err != nil {
		return 0, storeError(err)
	}
	if !exists {
		return 0, notFound("review type %d does not exist", reviewTypeID)
	}

	ok, err := database.FacultyExist(db, extraPanel)
	if err != nil {
		return 0, storeError(err)
	}
	if !ok {
		return 0, notFound("one or more panel faculty do not exist")
	}

	panel := effectivePanel(extraPanel, mentorID)
	if len(panel) == 0 {
		return 0, ruleError(KindEmptyPanel, "a review needs at least one panelist or a team mentor")
	}

	reviewID, err := database.CreateReviewWithPanel(db, teamID, reviewTypeID, date, venue, panel)
	if err != nil {
		return 0, storeError(err)
	}
	return reviewID, nil
}

// effectivePanel merges the requested panel with the mentor and removes
// duplicates, keeping first-seen order.
func effectivePanel(extraPanel []int, mentorID *int) []int {
	seen := make(map[int]bool, len(extraPanel)+1)
	var panel []int
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			panel = append(panel, id)
		}
	}
	for _, id := range extraPanel {
		add(id)
	}
	if mentorID != nil {
		add(*mentorID)
	}
	return panel
}
