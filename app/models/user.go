package models

import "time"

// Roles an account can hold. A user account is linked to a student record
// (via SRN) or a faculty record (via FacultyID) depending on its role.
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// User is a login account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required,min=8"`
	Role      string    `json:"role" validate:"required,oneof=admin faculty student"`
	SRN       *string   `json:"srn,omitempty"`
	FacultyID *int      `json:"faculty_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthContext identifies the caller of a domain operation. It is built by the
// auth middleware from the JWT and passed explicitly into every service call;
// no service reads ambient session state.
type AuthContext struct {
	UserID    string
	Email     string
	Role      string
	SRN       *string
	FacultyID *int
}

// IsAdmin reports whether the caller holds the admin role.
func (a AuthContext) IsAdmin() bool { return a.Role == RoleAdmin }

// IsFaculty reports whether the caller is faculty (or admin acting as such).
func (a AuthContext) IsFaculty() bool { return a.Role == RoleFaculty || a.Role == RoleAdmin }

// IsStudent reports whether the caller holds the student role.
func (a AuthContext) IsStudent() bool { return a.Role == RoleStudent }

// ActsFor reports whether the caller may act on behalf of the given SRN.
// Admins may act for anyone; students only for themselves.
func (a AuthContext) ActsFor(srn string) bool {
	if a.IsAdmin() {
		return true
	}
	return a.SRN != nil && *a.SRN == srn
}
