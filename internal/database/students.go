package database

import (
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Student is a student row. Name, username and the parent contact are
// mandatory; the layer itself rejects records missing them instead of
// trusting callers to validate.
type Student struct {
	ID             int64  `json:"id"`
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age"`
	Class          string `json:"class"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password,omitempty"`
	Batch          string `json:"batch"`
	ParentContact  string `json:"parent_contact" validate:"required"`
	StudentContact string `json:"student_contact"`
}

// StudentSummary is the reduced projection returned by id-prefix search.
type StudentSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Class    string `json:"class"`
	Username string `json:"username"`
	Batch    string `json:"batch"`
}

// AddStudent inserts a student and ensures a zeroed fees row exists for the
// new id, both inside one transaction. Returns the new id. A duplicate
// username surfaces as a constraint violation (see IsConstraintViolation).
func (db *DB) AddStudent(s *Student) (int64, error) {
	if err := validate.Struct(s); err != nil {
		return 0, fmt.Errorf("invalid student record: %w", err)
	}

	var id int64
	err := db.Transaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO students (name, age, class, contact, email, username, password, batch, parent_contact, student_contact)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, s.Name, s.Age, s.Class, s.Contact, s.Email, s.Username, s.Password, s.Batch, s.ParentContact, s.StudentContact)
		if err != nil {
			return fmt.Errorf("failed to add student: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get student id: %w", err)
		}

		// INSERT OR IGNORE keeps this idempotent for ids reused after a
		// partial delete
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO fees (student_id, amount_paid, pending_amount, last_payment_date)
			VALUES (?, 0, 0, NULL)
		`, id); err != nil {
			return fmt.Errorf("failed to create fees row: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.ID = id
	return id, nil
}

// UpdateStudent overwrites all mutable columns of the student row.
func (db *DB) UpdateStudent(id int64, s *Student) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid student record: %w", err)
	}

	_, err := db.Exec(`
		UPDATE students
		SET name = ?, age = ?, class = ?, contact = ?, email = ?, username = ?, password = ?, batch = ?, parent_contact = ?, student_contact = ?
		WHERE id = ?
	`, s.Name, s.Age, s.Class, s.Contact, s.Email, s.Username, s.Password, s.Batch, s.ParentContact, s.StudentContact, id)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

// DeleteStudent removes the student plus its fees, attendance and
// performance rows in one transaction, so the cascade appears atomic.
func (db *DB) DeleteStudent(id int64) error {
	return db.Transaction(func(tx *sql.Tx) error {
		for _, stmt := range []string{
			"DELETE FROM students WHERE id = ?",
			"DELETE FROM fees WHERE student_id = ?",
			"DELETE FROM attendance WHERE student_id = ?",
			"DELETE FROM performance WHERE student_id = ?",
		} {
			if _, err := tx.Exec(stmt, id); err != nil {
				return fmt.Errorf("failed to delete student: %w", err)
			}
		}
		return nil
	})
}

// GetStudentByID retrieves the student projection without the password.
// Returns (nil, nil) when no such student exists.
func (db *DB) GetStudentByID(id int64) (*Student, error) {
	row := db.QueryRow(`
		SELECT id, name, age, class, contact, email, username, batch, parent_contact, student_contact
		FROM students WHERE id = ?
	`, id)
	student, err := scanStudent(row, false)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// GetStudentByUsername retrieves the full student row including the stored
// password, for the login flow. Returns (nil, nil) when not found.
func (db *DB) GetStudentByUsername(username string) (*Student, error) {
	row := db.QueryRow(`
		SELECT id, name, age, class, contact, email, username, password, batch, parent_contact, student_contact
		FROM students WHERE username = ?
	`, username)
	student, err := scanStudent(row, true)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// SearchStudentsByIDPrefix matches the textual form of the numeric id
// against prefix, ordered by id ascending.
func (db *DB) SearchStudentsByIDPrefix(prefix string) ([]StudentSummary, error) {
	rows, err := db.Query(`
		SELECT id, name, class, username, batch
		FROM students
		WHERE CAST(id AS TEXT) LIKE ?
		ORDER BY id
	`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}
	defer rows.Close()

	var students []StudentSummary
	for rows.Next() {
		var (
			s                            StudentSummary
			name, class, username, batch sql.NullString
		)
		if err := rows.Scan(&s.ID, &name, &class, &username, &batch); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		s.Name = nullStringValue(name)
		s.Class = nullStringValue(class)
		s.Username = nullStringValue(username)
		s.Batch = nullStringValue(batch)
		students = append(students, s)
	}

	return students, rows.Err()
}

// ListStudents returns students ordered by name. A non-empty search term is
// matched case-insensitively as a substring of name, class or batch.
// Passwords are not included.
func (db *DB) ListStudents(search string) ([]Student, error) {
	query := `
		SELECT id, name, age, class, contact, email, username, batch, parent_contact, student_contact
		FROM students
	`
	var args []any
	if search != "" {
		query += " WHERE name LIKE ? OR class LIKE ? OR batch LIKE ?"
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}
	query += " ORDER BY name"

	return db.listStudents(query, false, args...)
}

// ListStudentsFull returns the same name-ordered rows as ListStudents but
// includes stored passwords, and additionally matches the search term
// against usernames. Intended for the admin roster view.
func (db *DB) ListStudentsFull(search string) ([]Student, error) {
	query := `
		SELECT id, name, age, class, contact, email, username, password, batch, parent_contact, student_contact
		FROM students
	`
	var args []any
	if search != "" {
		query += " WHERE username LIKE ? OR name LIKE ? OR class LIKE ? OR batch LIKE ?"
		like := "%" + search + "%"
		args = append(args, like, like, like, like)
	}
	query += " ORDER BY name"

	return db.listStudents(query, true, args...)
}

func (db *DB) listStudents(query string, withPassword bool, args ...any) ([]Student, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		student, err := scanStudent(rows, withPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, *student)
	}

	return students, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent reads a student row. Free-text columns are nullable in
// databases migrated from older installations, so every one of them goes
// through sql.Null* first.
func scanStudent(row rowScanner, withPassword bool) (*Student, error) {
	var (
		s                             Student
		age                           sql.NullInt64
		name, class, contact, email   sql.NullString
		username, password            sql.NullString
		batch, parent, studentContact sql.NullString
	)

	dest := []any{&s.ID, &name, &age, &class, &contact, &email, &username}
	if withPassword {
		dest = append(dest, &password)
	}
	dest = append(dest, &batch, &parent, &studentContact)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.Name = nullStringValue(name)
	s.Age = int(age.Int64)
	s.Class = nullStringValue(class)
	s.Contact = nullStringValue(contact)
	s.Email = nullStringValue(email)
	s.Username = nullStringValue(username)
	s.Password = nullStringValue(password)
	s.Batch = nullStringValue(batch)
	s.ParentContact = nullStringValue(parent)
	s.StudentContact = nullStringValue(studentContact)
	return &s, nil
}
