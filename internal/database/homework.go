package database

import (
	"database/sql"
	"fmt"
)

// Homework is an assignment posted for a batch.
type Homework struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
	PostedAt    string `json:"posted_at"`
	IsOptional  bool   `json:"is_optional"`
}

// ListHomeworkFor returns the batch's homework ordered by due date
// (textual comparison).
func (db *DB) ListHomeworkFor(batch string) ([]Homework, error) {
	rows, err := db.Query(`
		SELECT id, title, due_date, description, posted_at, is_optional
		FROM homework WHERE batch = ?
		ORDER BY due_date
	`, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to list homework: %w", err)
	}
	defer rows.Close()

	var assignments []Homework
	for rows.Next() {
		var (
			h                               Homework
			title, dueDate, descr, postedAt sql.NullString
			isOptional                      sql.NullInt64
		)
		if err := rows.Scan(&h.ID, &title, &dueDate, &descr, &postedAt, &isOptional); err != nil {
			return nil, fmt.Errorf("failed to scan homework: %w", err)
		}
		h.Title = nullStringValue(title)
		h.DueDate = nullStringValue(dueDate)
		h.Description = nullStringValue(descr)
		h.PostedAt = nullStringValue(postedAt)
		h.IsOptional = isOptional.Int64 != 0
		assignments = append(assignments, h)
	}

	return assignments, rows.Err()
}
