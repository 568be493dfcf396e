package database

import (
	"database/sql"

	"capstone-management/app/models"
)

// GetRubrics returns all rubrics ordered by id.
func GetRubrics(db *sql.DB) ([]*models.Rubric, error) {
	rows, err := db.Query(`SELECT id, name, max_marks FROM rubrics ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rubrics []*models.Rubric
	for rows.Next() {
		r := &models.Rubric{}
		if err := rows.Scan(&r.ID, &r.Name, &r.MaxMarks); err != nil {
			return nil, err
		}
		rubrics = append(rubrics, r)
	}
	return rubrics, rows.Err()
}

// CreateRubric inserts a rubric and returns its id.
func CreateRubric(db *sql.DB, r *models.Rubric) (int, error) {
	var id int
	err := db.QueryRow(`INSERT INTO rubrics (name, max_marks) VALUES ($1, $2) RETURNING id`,
		r.Name, r.MaxMarks).Scan(&id)
	return id, err
}
