package database

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"
)

// TimetableEntry is one scheduled slot for a batch. Day and time slot are
// free text; overlapping slots are not detected.
type TimetableEntry struct {
	ID        int64  `json:"id"`
	Batch     string `json:"batch"`
	Day       string `json:"day"`
	TimeSlot  string `json:"time_slot"`
	Subject   string `json:"subject"`
	TeacherID *int64 `json:"teacher_id,omitempty"`
}

// AddTimetableEntry appends a timetable row and returns its id. Every call
// creates a new row; the import flow clears a batch first when it wants
// replace semantics.
func (db *DB) AddTimetableEntry(batch, day, timeSlot, subject string, teacherID *int64) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO timetable (batch, day, time_slot, subject, teacher_id)
		VALUES (?, ?, ?, ?, ?)
	`, batch, day, timeSlot, subject, teacherID)
	if err != nil {
		return 0, fmt.Errorf("failed to add timetable entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get timetable entry id: %w", err)
	}
	return id, nil
}

// DeleteTimetableEntry removes one row by id.
func (db *DB) DeleteTimetableEntry(id int64) error {
	_, err := db.Exec("DELETE FROM timetable WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete timetable entry: %w", err)
	}
	return nil
}

// ClearTimetableForBatch deletes every row for the batch.
func (db *DB) ClearTimetableForBatch(batch string) error {
	_, err := db.Exec("DELETE FROM timetable WHERE batch = ?", batch)
	if err != nil {
		return fmt.Errorf("failed to clear timetable: %w", err)
	}
	return nil
}

// ListTimetable returns timetable rows ordered by (day, time_slot) when a
// batch filter is given, or (batch, day, time_slot) for the full table.
// An empty batch means unfiltered.
func (db *DB) ListTimetable(batch string) ([]TimetableEntry, error) {
	query := "SELECT id, batch, day, time_slot, subject, teacher_id FROM timetable"
	var args []any
	if batch != "" {
		query += " WHERE batch = ? ORDER BY day, time_slot"
		args = append(args, batch)
	} else {
		query += " ORDER BY batch, day, time_slot"
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timetable: %w", err)
	}
	defer rows.Close()

	var entries []TimetableEntry
	for rows.Next() {
		var (
			e                            TimetableEntry
			batchCol, day, slot, subject sql.NullString
			teacherID                    sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &batchCol, &day, &slot, &subject, &teacherID); err != nil {
			return nil, fmt.Errorf("failed to scan timetable entry: %w", err)
		}
		e.Batch = nullStringValue(batchCol)
		e.Day = nullStringValue(day)
		e.TimeSlot = nullStringValue(slot)
		e.Subject = nullStringValue(subject)
		e.TeacherID = nullInt64ToPtr(teacherID)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// NextClassesFor returns up to limit upcoming slots for the batch, ordered
// so today's weekday sorts first and the week wraps from there. Days whose
// first three characters are not a recognized weekday sort last. Ties break
// on the raw time-slot string, which is lexicographic, not time-aware.
func (db *DB) NextClassesFor(batch string, limit int) ([]TimetableEntry, error) {
	return db.nextClassesAt(batch, limit, time.Now())
}

func (db *DB) nextClassesAt(batch string, limit int, now time.Time) ([]TimetableEntry, error) {
	entries, err := db.ListTimetable(batch)
	if err != nil {
		return nil, err
	}

	// Monday-based index to match dayIndex
	today := (int(now.Weekday()) + 6) % 7

	sort.SliceStable(entries, func(i, j int) bool {
		di := rotatedDayIndex(entries[i].Day, today)
		dj := rotatedDayIndex(entries[j].Day, today)
		if di != dj {
			return di < dj
		}
		return entries[i].TimeSlot < entries[j].TimeSlot
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// dayIndex maps the first three characters of a day string to Mon=0..Sun=6,
// or 7 when unrecognized.
func dayIndex(day string) int {
	d := day
	if len(d) > 3 {
		d = d[:3]
	}
	if len(d) > 0 {
		d = strings.ToUpper(d[:1]) + strings.ToLower(d[1:])
	}
	for i, w := range weekdayOrder {
		if w == d {
			return i
		}
	}
	return 7
}

func rotatedDayIndex(day string, today int) int {
	idx := dayIndex(day)
	if idx == 7 {
		return 7
	}
	return (idx - today + 7) % 7
}
