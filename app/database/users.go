package database

import (
	"database/sql"

	"capstone-management/app/models"
)

// GetUserByEmail returns an active user account, or sql.ErrNoRows.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(`
		SELECT id, email, password, role, srn, faculty_id, is_active, created_at
		FROM users WHERE email = $1 AND is_active = true`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.SRN, &u.FacultyID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByID returns an active user account, or sql.ErrNoRows.
func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(`
		SELECT id, email, password, role, srn, faculty_id, is_active, created_at
		FROM users WHERE id = $1 AND is_active = true`, userID).
		Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.SRN, &u.FacultyID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts a user account with an already-hashed password.
func CreateUser(db *sql.DB, u *models.User) error {
	_, err := db.Exec(`
		INSERT INTO users (id, email, password, role, srn, faculty_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Password, u.Role, u.SRN, u.FacultyID)
	return err
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID, hash string) error {
	res, err := db.Exec(`UPDATE users SET password = $2 WHERE id = $1`, userID, hash)
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
