// Package importer replays timetable bulk-load files against the store.
// Files are plain CSV with a header row and columns
// (batch, day, time, subject, teacher id).
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/classdesk/classdesk/internal/database"
)

// Row is one bulk-load timetable entry.
type Row struct {
	Batch     string
	Day       string
	TimeSlot  string
	Subject   string
	TeacherID *int64
}

// ParseRecord maps one CSV record onto a Row. Short records are padded with
// empty fields, a blank batch falls back to defaultBatch, and a teacher id
// is attached only when the field is non-empty and all digits.
func ParseRecord(record []string, defaultBatch string) Row {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}

	row := Row{
		Batch:    field(0),
		Day:      field(1),
		TimeSlot: field(2),
		Subject:  field(3),
	}
	if row.Batch == "" {
		row.Batch = defaultBatch
	}
	if raw := field(4); isDigits(raw) {
		var id int64
		for _, c := range raw {
			id = id*10 + int64(c-'0')
		}
		row.TeacherID = &id
	}
	return row
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Importer replays bulk-load rows as timetable inserts.
type Importer struct {
	db *database.DB
}

// New creates a new importer.
func New(db *database.DB) *Importer {
	return &Importer{db: db}
}

// ImportTimetable reads CSV from r, skips the header row, and inserts one
// timetable entry per remaining row. Rows with no day and no time slot are
// skipped. Returns the number of rows imported.
//
// Imports accumulate; callers wanting replace semantics clear the batch
// first with ClearTimetableForBatch.
func (imp *Importer) ImportTimetable(r io.Reader, defaultBatch string) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	imported := 0
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("failed to read csv: %w", err)
		}
		if first {
			// Header row
			first = false
			continue
		}

		row := ParseRecord(record, defaultBatch)
		if row.Day == "" && row.TimeSlot == "" {
			continue
		}

		if _, err := imp.db.AddTimetableEntry(row.Batch, row.Day, row.TimeSlot, row.Subject, row.TeacherID); err != nil {
			return imported, fmt.Errorf("failed to import timetable row: %w", err)
		}
		imported++
	}

	return imported, nil
}

// ImportTimetableFile imports one CSV file. The default batch is the file
// name without its extension, so "evening-b2.csv" loads into batch
// "evening-b2" unless rows carry their own batch value.
func (imp *Importer) ImportTimetableFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	n, err := imp.ImportTimetable(f, batchNameFromPath(path))
	if err != nil {
		return n, err
	}

	log.Info().Str("file", path).Int("rows", n).Msg("Imported timetable file")
	return n, nil
}
