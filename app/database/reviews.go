package database

import (
	"database/sql"
	"fmt"
	"time"

	"capstone-management/app/models"

	"github.com/lib/pq"
)

// GetReviewTypes returns all review types ordered by id.
func GetReviewTypes(db *sql.DB) ([]*models.ReviewType, error) {
	rows, err := db.Query(`SELECT id, name FROM review_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.ReviewType
	for rows.Next() {
		rt := &models.ReviewType{}
		if err := rows.Scan(&rt.ID, &rt.Name); err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, rows.Err()
}

// CreateReviewType inserts a review type and returns its id.
func CreateReviewType(db *sql.DB, name string) (int, error) {
	var id int
	err := db.QueryRow(`INSERT INTO review_types (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	return id, err
}

// ReviewTypeExists reports whether a review type row exists.
func ReviewTypeExists(db *sql.DB, reviewTypeID int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM review_types WHERE id = $1)`, reviewTypeID).Scan(&exists)
	return exists, err
}

// ReviewExists reports whether a review row exists.
func ReviewExists(db *sql.DB, reviewID int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`, reviewID).Scan(&exists)
	return exists, err
}

// CreateReviewWithPanel inserts the review row and one panel row per faculty
// member in a single transaction.
func CreateReviewWithPanel(db *sql.DB, teamID, reviewTypeID int, date time.Time, venue *string, panel []int) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var reviewID int
	err = tx.QueryRow(`
		INSERT INTO reviews (review_type_id, team_id, review_date, venue)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		reviewTypeID, teamID, date, venue).Scan(&reviewID)
	if err != nil {
		return 0, err
	}

	for _, facultyID := range panel {
		if _, err := tx.Exec(`INSERT INTO review_panels (review_id, faculty_id) VALUES ($1, $2)`,
			reviewID, facultyID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return reviewID, nil
}

// GetReviews returns every review with its type name and panel membership.
func GetReviews(db *sql.DB) ([]*models.ReviewDetail, error) {
	query := `
		SELECT r.id, r.review_type_id, r.team_id, r.review_date, r.venue, rt.name,
		       COALESCE(array_agg(rp.faculty_id ORDER BY rp.faculty_id) FILTER (WHERE rp.faculty_id IS NOT NULL), '{}')
		FROM reviews r
		JOIN review_types rt ON r.review_type_id = rt.id
		LEFT JOIN review_panels rp ON r.id = rp.review_id
		GROUP BY r.id, r.review_type_id, r.team_id, r.review_date, r.venue, rt.name
		ORDER BY r.review_date DESC, r.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.ReviewDetail
	for rows.Next() {
		rd := &models.ReviewDetail{}
		var panel []int64
		if err := rows.Scan(&rd.ID, &rd.ReviewTypeID, &rd.TeamID, &rd.Date, &rd.Venue,
			&rd.ReviewName, pq.Array(&panel)); err != nil {
			return nil, err
		}
		rd.Panel = make([]int, len(panel))
		for i, id := range panel {
			rd.Panel[i] = int(id)
		}
		reviews = append(reviews, rd)
	}
	return reviews, rows.Err()
}

// PanelReviewsFor returns the reviews a faculty member is paneled on, newest
// first, with the team's project title when one is assigned.
func PanelReviewsFor(db *sql.DB, facultyID int) ([]*models.PanelReview, error) {
	query := `
		SELECT r.id, rt.name, r.review_date, r.venue, r.team_id, p.title
		FROM review_panels rp
		JOIN reviews r ON rp.review_id = r.id
		JOIN review_types rt ON r.review_type_id = rt.id
		LEFT JOIN team_projects tp ON r.team_id = tp.team_id
		LEFT JOIN projects p ON tp.project_id = p.id
		WHERE rp.faculty_id = $1
		ORDER BY r.review_date DESC, r.id`

	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var panels []*models.PanelReview
	for rows.Next() {
		pr := &models.PanelReview{}
		var date time.Time
		if err := rows.Scan(&pr.ReviewID, &pr.ReviewName, &date, &pr.Venue, &pr.TeamID, &pr.ProjectTitle); err != nil {
			return nil, err
		}
		pr.Date = date.Format("2006-01-02")
		panels = append(panels, pr)
	}
	return panels, rows.Err()
}
