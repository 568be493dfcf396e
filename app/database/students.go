package database

import (
	"database/sql"

	"capstone-management/app/models"

	"github.com/lib/pq"
)

// GetStudents returns all students ordered by name.
func GetStudents(db *sql.DB) ([]*models.Student, error) {
	rows, err := db.Query(`SELECT srn, name, email, sem, created_at FROM students ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.SRN, &s.Name, &s.Email, &s.Sem, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentBySRN returns one student, or sql.ErrNoRows.
func GetStudentBySRN(db *sql.DB, srn string) (*models.Student, error) {
	s := &models.Student{}
	err := db.QueryRow(`SELECT srn, name, email, sem, created_at FROM students WHERE srn = $1`, srn).
		Scan(&s.SRN, &s.Name, &s.Email, &s.Sem, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a student row.
func CreateStudent(db *sql.DB, s *models.Student) error {
	_, err := db.Exec(`INSERT INTO students (srn, name, email, sem) VALUES ($1, $2, $3, $4)`,
		s.SRN, s.Name, s.Email, s.Sem)
	return err
}

// UpdateStudent updates a student's mutable fields.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	res, err := db.Exec(`UPDATE students SET name = $2, email = $3, sem = $4 WHERE srn = $1`,
		s.SRN, s.Name, s.Email, s.Sem)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent removes a student; membership and evaluations cascade.
func DeleteStudent(db *sql.DB, srn string) error {
	res, err := db.Exec(`DELETE FROM students WHERE srn = $1`, srn)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetStudentTeamInfo returns the team/project/mentor block of the student
// dashboard, or nil when the student is not on any team.
func GetStudentTeamInfo(db *sql.DB, srn string) (*models.StudentTeamInfo, error) {
	info := &models.StudentTeamInfo{}
	err := db.QueryRow(`
		SELECT t.id, p.title, p.status, f.name,
		       (SELECT COALESCE(array_agg(s2.name ORDER BY s2.name), '{}')
		        FROM team_students ts2
		        JOIN students s2 ON ts2.srn = s2.srn
		        WHERE ts2.team_id = t.id)
		FROM team_students ts
		JOIN teams t ON ts.team_id = t.id
		LEFT JOIN faculty f ON t.mentor_id = f.id
		LEFT JOIN team_projects tp ON t.id = tp.team_id
		LEFT JOIN projects p ON tp.project_id = p.id
		WHERE ts.srn = $1`, srn).
		Scan(&info.TeamID, &info.ProjectTitle, &info.ProjectStatus, &info.MentorName,
			pq.Array(&info.Members))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}
