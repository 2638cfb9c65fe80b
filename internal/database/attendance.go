package database

import (
	"fmt"
	"math"
)

// Attendance statuses.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// AttendanceEntry is one marked day for a student.
type AttendanceEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// MarkAttendance records the status for (studentID, date). Marking the same
// date again replaces the previous status, it never duplicates the row.
func (db *DB) MarkAttendance(studentID int64, date, status string) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO attendance (student_id, date, status)
		VALUES (?, ?, ?)
	`, studentID, date, status)
	if err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	return nil
}

// GetAttendance returns the student's marked days, newest date first.
func (db *DB) GetAttendance(studentID int64) ([]AttendanceEntry, error) {
	rows, err := db.Query(`
		SELECT date, status FROM attendance
		WHERE student_id = ?
		ORDER BY date DESC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	defer rows.Close()

	var entries []AttendanceEntry
	for rows.Next() {
		var e AttendanceEntry
		if err := rows.Scan(&e.Date, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// AttendancePercentage returns present / total * 100 for one student,
// rounded to two decimal places. A student with no records is 0.0.
func (db *DB) AttendancePercentage(studentID int64) (float64, error) {
	var total, present int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM attendance WHERE student_id = ?", studentID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	err = db.QueryRow(
		"SELECT COUNT(*) FROM attendance WHERE student_id = ? AND status = ?", studentID, StatusPresent,
	).Scan(&present)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return percentage(present, total), nil
}

// OverallAttendancePercentage aggregates across all students.
func (db *DB) OverallAttendancePercentage() (float64, error) {
	var total, present int
	if err := db.QueryRow("SELECT COUNT(*) FROM attendance").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	err := db.QueryRow(
		"SELECT COUNT(*) FROM attendance WHERE status = ?", StatusPresent,
	).Scan(&present)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return percentage(present, total), nil
}

func percentage(present, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}
