package database

import (
	"database/sql"
	"fmt"
)

// Teacher is a teacher row. Subjects and availability are free text; there
// is no foreign key to the timetable.
type Teacher struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Subjects     string `json:"subjects"`
	Availability string `json:"availability"`
}

// AddTeacher inserts a teacher and returns the new id.
func (db *DB) AddTeacher(name, subjects, availability string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO teachers (name, subjects, availability)
		VALUES (?, ?, ?)
	`, name, subjects, availability)
	if err != nil {
		return 0, fmt.Errorf("failed to add teacher: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get teacher id: %w", err)
	}
	return id, nil
}

// ListTeachers returns all teachers ordered by name.
func (db *DB) ListTeachers() ([]Teacher, error) {
	rows, err := db.Query(`
		SELECT id, name, subjects, availability FROM teachers ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()

	var teachers []Teacher
	for rows.Next() {
		var (
			t                      Teacher
			subjects, availability sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &subjects, &availability); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		t.Subjects = nullStringValue(subjects)
		t.Availability = nullStringValue(availability)
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

// DeleteTeacher removes the teacher row. Timetable entries keep their
// teacher_id reference.
func (db *DB) DeleteTeacher(id int64) error {
	_, err := db.Exec("DELETE FROM teachers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	return nil
}
