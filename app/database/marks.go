package database

import (
	"database/sql"

	"capstone-management/app/models"
)

// StudentTotalMarks computes a student's total: marks are averaged across the
// panel per (review, rubric), then summed across rubrics and reviews. A
// student with no evaluations totals 0.
func StudentTotalMarks(db *sql.DB, srn string) (float64, error) {
	var total float64
	err := db.QueryRow(`
		SELECT COALESCE(SUM(avg_marks), 0)
		FROM (
			SELECT AVG(marks) AS avg_marks
			FROM evaluations
			WHERE srn = $1
			GROUP BY review_id, rubric_id
		) per_rubric`, srn).Scan(&total)
	return total, err
}

// TeamAverageMarks computes the mean of member totals for one review.
// Unevaluated members count as 0; a team with no evaluations averages 0.
func TeamAverageMarks(db *sql.DB, teamID, reviewID int) (float64, error) {
	var avg float64
	err := db.QueryRow(`
		SELECT COALESCE(AVG(member_total), 0)
		FROM (
			SELECT COALESCE(SUM(per_rubric.avg_marks), 0) AS member_total
			FROM team_students ts
			LEFT JOIN (
				SELECT srn, rubric_id, AVG(marks) AS avg_marks
				FROM evaluations
				WHERE review_id = $2
				GROUP BY srn, rubric_id
			) per_rubric ON per_rubric.srn = ts.srn
			WHERE ts.team_id = $1
			GROUP BY ts.srn
		) totals`, teamID, reviewID).Scan(&avg)
	return avg, err
}

// GetAdminView returns every project joined against its team and the team's
// scheduled reviews, for the admin oversight page.
func GetAdminView(db *sql.DB) ([]*models.AdminViewRow, error) {
	query := `
		SELECT p.id, p.title, p.status, tp.team_id, f.name,
		       r.id, rt.name, r.review_date, r.venue
		FROM projects p
		JOIN team_projects tp ON p.id = tp.project_id
		JOIN teams t ON tp.team_id = t.id
		LEFT JOIN faculty f ON t.mentor_id = f.id
		LEFT JOIN reviews r ON r.team_id = t.id
		LEFT JOIN review_types rt ON r.review_type_id = rt.id
		ORDER BY p.id, r.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var view []*models.AdminViewRow
	for rows.Next() {
		row := &models.AdminViewRow{}
		if err := rows.Scan(&row.ProjectID, &row.ProjectTitle, &row.ProjectStatus,
			&row.TeamID, &row.MentorName, &row.ReviewID, &row.ReviewName,
			&row.ReviewDate, &row.Venue); err != nil {
			return nil, err
		}
		view = append(view, row)
	}
	return view, rows.Err()
}

// GetMentorWorkload returns one row per mentored team with its size, for the
// mentor workload report.
func GetMentorWorkload(db *sql.DB) ([]*models.MentorWorkloadRow, error) {
	query := `
		SELECT f.id, f.name, t.id, COUNT(ts.srn)
		FROM faculty f
		JOIN teams t ON t.mentor_id = f.id
		LEFT JOIN team_students ts ON ts.team_id = t.id
		GROUP BY f.id, f.name, t.id
		ORDER BY f.name, t.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*models.MentorWorkloadRow
	for rows.Next() {
		row := &models.MentorWorkloadRow{}
		if err := rows.Scan(&row.FacultyID, &row.FacultyName, &row.TeamID, &row.TeamSize); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
