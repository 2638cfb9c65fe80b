package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/classdesk/classdesk/internal/database"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name         string
		record       []string
		defaultBatch string
		want         Row
		wantTeacher  *int64
	}{
		{
			name:   "full row",
			record: []string{"B1", "Mon", "6-7", "Science", "12"},
			want:   Row{Batch: "B1", Day: "Mon", TimeSlot: "6-7", Subject: "Science"},
			wantTeacher: func() *int64 {
				id := int64(12)
				return &id
			}(),
		},
		{
			name:         "blank batch falls back to default",
			record:       []string{"", "Tue", "7-8", "Math", ""},
			defaultBatch: "B2",
			want:         Row{Batch: "B2", Day: "Tue", TimeSlot: "7-8", Subject: "Math"},
		},
		{
			name:   "non-numeric teacher id is dropped",
			record: []string{"B1", "Wed", "8-9", "Chem", "TBD"},
			want:   Row{Batch: "B1", Day: "Wed", TimeSlot: "8-9", Subject: "Chem"},
		},
		{
			name:         "short row is padded",
			record:       []string{"", "Thu"},
			defaultBatch: "B3",
			want:         Row{Batch: "B3", Day: "Thu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRecord(tt.record, tt.defaultBatch)
			if got.Batch != tt.want.Batch || got.Day != tt.want.Day ||
				got.TimeSlot != tt.want.TimeSlot || got.Subject != tt.want.Subject {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if tt.wantTeacher == nil && got.TeacherID != nil {
				t.Fatalf("expected no teacher id, got %d", *got.TeacherID)
			}
			if tt.wantTeacher != nil && (got.TeacherID == nil || *got.TeacherID != *tt.wantTeacher) {
				t.Fatalf("expected teacher id %d, got %+v", *tt.wantTeacher, got.TeacherID)
			}
		})
	}
}

func TestImportTimetable(t *testing.T) {
	db := newTestDB(t)
	imp := New(db)

	csvData := strings.Join([]string{
		"batch,day,time,subject,teacher_id",
		"B1,Mon,6-7,Science,3",
		",Tue,7-8,Math,",
		",,,,",
	}, "\n")

	n, err := imp.ImportTimetable(strings.NewReader(csvData), "B1")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported rows, got %d", n)
	}

	entries, err := db.ListTimetable("B1")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 timetable rows, got %d", len(entries))
	}
	// Ordered (day, time_slot): Mon before Tue
	if entries[0].Subject != "Science" || entries[0].TeacherID == nil || *entries[0].TeacherID != 3 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Day != "Tue" || entries[1].TeacherID != nil {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestImportTimetable_ReimportAccumulates(t *testing.T) {
	db := newTestDB(t)
	imp := New(db)

	csvData := "batch,day,time,subject,teacher_id\nB1,Mon,6-7,Science,\n"
	for range 2 {
		if _, err := imp.ImportTimetable(strings.NewReader(csvData), "B1"); err != nil {
			t.Fatalf("import failed: %v", err)
		}
	}

	entries, err := db.ListTimetable("B1")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected re-import to accumulate rows, got %d", len(entries))
	}

	// The documented replace flow: clear, then import
	if err := db.ClearTimetableForBatch("B1"); err != nil {
		t.Fatalf("failed to clear batch: %v", err)
	}
	if _, err := imp.ImportTimetable(strings.NewReader(csvData), "B1"); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	entries, err = db.ListTimetable("B1")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected clear+import to leave one row, got %d", len(entries))
	}
}
