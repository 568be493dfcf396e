package services

import (
	"database/sql"

	"capstone-management/app/database"
	"capstone-management/app/models"
)

// TotalMarks returns a student's running total across all reviews. A student
// with no evaluations totals 0; that is not an error.
func TotalMarks(db *sql.DB, actx models.AuthContext, srn string) (float64, error) {
	if !actx.IsFaculty() && !actx.ActsFor(srn) {
		return 0, forbidden("students can only view their own marks")
	}

	if _, err := database.GetStudentBySRN(db, srn); err != nil {
		if err == sql.ErrNoRows {
			return 0, notFound("student %s does not exist", srn)
		}
		return 0, storeError(err)
	}

	total, err := database.StudentTotalMarks(db, srn)
	if err != nil {
		return 0, storeError(err)
	}
	return total, nil
}

// TeamAverage returns the mean of member totals for one review. A team with
// no evaluations for the review averages 0.
func TeamAverage(db *sql.DB, actx models.AuthContext, teamID, reviewID int) (float64, error) {
	if _, err := database.GetTeamByID(db, teamID); err != nil {
		if err == sql.ErrNoRows {
			return 0, notFound("team %d does not exist", teamID)
		}
		return 0, storeError(err)
	}
	exists, err := database.ReviewExists(db, reviewID)
	if err != nil {
		return 0, storeError(err)
	}
	if !exists {
		return 0, notFound("review %d does not exist", reviewID)
	}

	avg, err := database.TeamAverageMarks(db, teamID, reviewID)
	if err != nil {
		return 0, storeError(err)
	}
	return avg, nil
}
