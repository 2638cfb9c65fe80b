package database

import (
	"database/sql"
	"fmt"
)

// PerformanceEntry is one marks record. The log is append-only; repeated
// records for the same subject and date are kept as separate rows.
type PerformanceEntry struct {
	StudentID int64   `json:"student_id"`
	Subject   string  `json:"subject"`
	Marks     float64 `json:"marks"`
	Date      string  `json:"date"`
}

// RecordMarks appends a performance row for the student.
func (db *DB) RecordMarks(studentID int64, subject string, marks float64, date string) error {
	_, err := db.Exec(`
		INSERT INTO performance (student_id, subject, marks, date)
		VALUES (?, ?, ?, ?)
	`, studentID, subject, marks, date)
	if err != nil {
		return fmt.Errorf("failed to record marks: %w", err)
	}
	return nil
}

// ListPerformance returns the student's marks history, newest date first.
func (db *DB) ListPerformance(studentID int64) ([]PerformanceEntry, error) {
	rows, err := db.Query(`
		SELECT student_id, subject, marks, date
		FROM performance WHERE student_id = ?
		ORDER BY date DESC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance: %w", err)
	}
	defer rows.Close()

	var entries []PerformanceEntry
	for rows.Next() {
		var (
			e             PerformanceEntry
			subject, date sql.NullString
		)
		if err := rows.Scan(&e.StudentID, &subject, &e.Marks, &date); err != nil {
			return nil, fmt.Errorf("failed to scan performance: %w", err)
		}
		e.Subject = nullStringValue(subject)
		e.Date = nullStringValue(date)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
