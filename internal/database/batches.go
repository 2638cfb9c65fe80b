package database

import (
	"database/sql"
	"fmt"
)

// Batch is a named group of students sharing a subject and time slot. The
// name is the soft join key used by students, timetable and homework rows;
// renaming or deleting a batch does not cascade.
type Batch struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
}

// UpsertBatch inserts the batch or, when the name already exists,
// overwrites its subject and time in place.
func (db *DB) UpsertBatch(name, subject, time string) error {
	_, err := db.Exec(`
		INSERT INTO batches (name, subject, time)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET subject = excluded.subject, time = excluded.time
	`, name, subject, time)
	if err != nil {
		return fmt.Errorf("failed to upsert batch: %w", err)
	}
	return nil
}

// DeleteBatch removes the batch row. Timetable and student rows referencing
// the name are left untouched.
func (db *DB) DeleteBatch(name string) error {
	_, err := db.Exec("DELETE FROM batches WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	return nil
}

// ListBatches returns all batches ordered by name.
func (db *DB) ListBatches() ([]Batch, error) {
	rows, err := db.Query("SELECT name, subject, time FROM batches ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var (
			b             Batch
			subject, time sql.NullString
		)
		if err := rows.Scan(&b.Name, &subject, &time); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		b.Subject = nullStringValue(subject)
		b.Time = nullStringValue(time)
		batches = append(batches, b)
	}

	return batches, rows.Err()
}
