package services

import (
	"database/sql"

	"capstone-management/app/database"
	"capstone-management/app/models"
)

// SubmitEvaluation records one faculty member's marks for one student on one
// rubric at one review. The project is resolved from the student's team; a
// student whose team has no project is rejected explicitly rather than
// silently dropped. Marks are bound-checked against the rubric here, the
// single authoritative place. Resubmission for the same (srn, rubric, review)
// overwrites marks and comments; the original created_at stands.
func SubmitEvaluation(db *sql.DB, actx models.AuthContext, facultyID int, srn string,
	rubricID, reviewID int, marks float64, comments *string) error {

	if !actx.IsFaculty() {
		return forbidden("only faculty can submit evaluations")
	}
	if !actx.IsAdmin() && (actx.FacultyID == nil || *actx.FacultyID != facultyID) {
		return forbidden("faculty can only submit evaluations as themselves")
	}

	if _, err := database.GetStudentBySRN(db, srn); err != nil {
		if err == sql.ErrNoRows {
			return notFound("student %s does not exist", srn)
		}
		return storeError(err)
	}

	exists, err := database.ReviewExists(db, reviewID)
	if err != nil {
		return storeError(err)
	}
	if !exists {
		return notFound("review %d does not exist", reviewID)
	}

	maxMarks, err := database.MaxMarksFor(db, rubricID)
	if err != nil {
		if err == sql.ErrNoRows {
			return notFound("rubric %d does not exist", rubricID)
		}
		return storeError(err)
	}
	if marks < 0 || marks > maxMarks {
		return ruleError(KindInvalidMarks, "marks %.2f outside rubric range 0 to %.2f", marks, maxMarks)
	}

	projectID, err := database.ProjectOfStudent(db, srn)
	if err != nil {
		return storeError(err)
	}
	if projectID == nil {
		return ruleError(KindNoProjectAssigned, "student %s has no project to be evaluated on", srn)
	}

	e := &models.Evaluation{
		FacultyID: facultyID,
		SRN:       srn,
		RubricID:  rubricID,
		ProjectID: *projectID,
		ReviewID:  reviewID,
		Marks:     marks,
		Comments:  comments,
	}
	if err := database.UpsertEvaluation(db, e); err != nil {
		return storeError(err)
	}
	return nil
}
