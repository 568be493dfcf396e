package database

import (
	"database/sql"

	"capstone-management/app/models"
)

// MaxMarksFor returns the upper mark bound of a rubric, or sql.ErrNoRows if
// the rubric does not exist.
func MaxMarksFor(db *sql.DB, rubricID int) (float64, error) {
	var max float64
	err := db.QueryRow(`SELECT max_marks FROM rubrics WHERE id = $1`, rubricID).Scan(&max)
	return max, err
}

// ProjectOfStudent resolves the project assigned to the student's current
// team, or nil when the student is unteamed or the team has no project.
func ProjectOfStudent(db *sql.DB, srn string) (*int, error) {
	var projectID int
	err := db.QueryRow(`
		SELECT tp.project_id
		FROM team_students ts
		JOIN team_projects tp ON ts.team_id = tp.team_id
		WHERE ts.srn = $1`, srn).Scan(&projectID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &projectID, nil
}

// UpsertEvaluation inserts an evaluation, or on a duplicate
// (srn, rubric_id, review_id) overwrites marks and comments. created_at is
// deliberately left untouched on overwrite.
func UpsertEvaluation(db *sql.DB, e *models.Evaluation) error {
	_, err := db.Exec(`
		INSERT INTO evaluations (faculty_id, srn, rubric_id, project_id, review_id, marks, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (srn, rubric_id, review_id)
		DO UPDATE SET faculty_id = EXCLUDED.faculty_id,
		              marks      = EXCLUDED.marks,
		              comments   = EXCLUDED.comments`,
		e.FacultyID, e.SRN, e.RubricID, e.ProjectID, e.ReviewID, e.Marks, e.Comments)
	return err
}

// GetEvaluationsForStudent returns a student's evaluations with rubric,
// review and faculty names resolved, ordered by review date.
func GetEvaluationsForStudent(db *sql.DB, srn string) ([]*models.EvaluationDetail, error) {
	query := `
		SELECT e.marks, e.comments, ru.name, rt.name, f.name, r.review_date, r.venue
		FROM evaluations e
		JOIN rubrics ru ON e.rubric_id = ru.id
		JOIN reviews r ON e.review_id = r.id
		JOIN review_types rt ON r.review_type_id = rt.id
		JOIN faculty f ON e.faculty_id = f.id
		WHERE e.srn = $1
		ORDER BY r.review_date, rt.name, ru.name`

	rows, err := db.Query(query, srn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []*models.EvaluationDetail
	for rows.Next() {
		ed := &models.EvaluationDetail{}
		if err := rows.Scan(&ed.Marks, &ed.Comments, &ed.RubricName, &ed.ReviewName,
			&ed.FacultyName, &ed.ReviewDate, &ed.ReviewVenue); err != nil {
			return nil, err
		}
		evals = append(evals, ed)
	}
	return evals, rows.Err()
}
