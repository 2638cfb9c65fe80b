// Package auth maps credential checks onto data layer lookups. Passwords
// are stored and compared verbatim; hashing is out of scope for this
// system, so treat the database file accordingly.
package auth

import (
	"github.com/classdesk/classdesk/internal/database"
)

// Role identifies which view a login unlocks.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Identity is a successful login result. Student is set only for student
// logins and carries the full profile the student dashboard renders.
type Identity struct {
	Role     Role              `json:"role"`
	Username string            `json:"username"`
	Student  *database.Student `json:"student,omitempty"`
}

// Service handles authentication against the store.
type Service struct {
	db *database.DB
}

// NewService creates a new auth service.
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// Authenticate checks the credential against admin rows first, then
// students. Returns (nil, nil) when nothing matches; the caller decides how
// to present the rejection.
func (s *Service) Authenticate(username, password string) (*Identity, error) {
	admin, err := s.db.GetAdmin(username)
	if err != nil {
		return nil, err
	}
	if admin != nil && admin.Password == password {
		return &Identity{Role: RoleAdmin, Username: admin.Username}, nil
	}

	student, err := s.db.GetStudentByUsername(username)
	if err != nil {
		return nil, err
	}
	if student != nil && student.Password == password {
		student.Password = ""
		return &Identity{Role: RoleStudent, Username: student.Username, Student: student}, nil
	}

	return nil, nil
}
