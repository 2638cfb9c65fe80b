package database

import (
	"testing"
	"time"
)

func TestAddTimetableEntry_AppendsDuplicates(t *testing.T) {
	db := newTestDB(t)

	for range 2 {
		if _, err := db.AddTimetableEntry("B1", "Mon", "6-7", "Science", nil); err != nil {
			t.Fatalf("failed to add timetable entry: %v", err)
		}
	}

	entries, err := db.ListTimetable("B1")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected duplicate slots to accumulate, got %d rows", len(entries))
	}
}

func TestClearTimetableForBatch(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.AddTimetableEntry("B1", "Mon", "6-7", "Science", nil); err != nil {
		t.Fatalf("failed to add timetable entry: %v", err)
	}
	if _, err := db.AddTimetableEntry("B2", "Tue", "7-8", "Math", nil); err != nil {
		t.Fatalf("failed to add timetable entry: %v", err)
	}

	if err := db.ClearTimetableForBatch("B1"); err != nil {
		t.Fatalf("failed to clear timetable: %v", err)
	}

	b1, err := db.ListTimetable("B1")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if len(b1) != 0 {
		t.Fatalf("expected B1 cleared, got %d rows", len(b1))
	}

	b2, err := db.ListTimetable("B2")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if len(b2) != 1 {
		t.Fatalf("expected B2 untouched, got %d rows", len(b2))
	}
}

func TestDeleteTimetableEntry(t *testing.T) {
	db := newTestDB(t)

	id, err := db.AddTimetableEntry("B1", "Mon", "6-7", "Science", nil)
	if err != nil {
		t.Fatalf("failed to add timetable entry: %v", err)
	}
	if err := db.DeleteTimetableEntry(id); err != nil {
		t.Fatalf("failed to delete timetable entry: %v", err)
	}

	entries, err := db.ListTimetable("B1")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected entry gone, got %d rows", len(entries))
	}
}

func TestNextClasses_RotatesToToday(t *testing.T) {
	db := newTestDB(t)

	for _, e := range []struct{ day, slot string }{
		{"Mon", "6-7"},
		{"Wednesday", "6-7"},
		{"Fri", "6-7"},
		{"Someday", "6-7"},
	} {
		if _, err := db.AddTimetableEntry("B1", e.day, e.slot, "Science", nil); err != nil {
			t.Fatalf("failed to add timetable entry: %v", err)
		}
	}

	// 2024-01-03 is a Wednesday
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	entries, err := db.nextClassesAt("B1", 10, now)
	if err != nil {
		t.Fatalf("failed to get next classes: %v", err)
	}

	want := []string{"Wednesday", "Fri", "Mon", "Someday"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, day := range want {
		if entries[i].Day != day {
			t.Fatalf("expected %s at position %d, got %s", day, i, entries[i].Day)
		}
	}
}

func TestNextClasses_TimeSlotTieBreakIsLexicographic(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.AddTimetableEntry("B1", "Mon", "9-10", "Science", nil); err != nil {
		t.Fatalf("failed to add timetable entry: %v", err)
	}
	if _, err := db.AddTimetableEntry("B1", "Mon", "10-11", "Math", nil); err != nil {
		t.Fatalf("failed to add timetable entry: %v", err)
	}

	// 2024-01-01 is a Monday
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	entries, err := db.nextClassesAt("B1", 2, now)
	if err != nil {
		t.Fatalf("failed to get next classes: %v", err)
	}

	// "10-11" < "9-10" as strings
	if entries[0].TimeSlot != "10-11" || entries[1].TimeSlot != "9-10" {
		t.Fatalf("expected lexicographic slot ordering, got %q then %q", entries[0].TimeSlot, entries[1].TimeSlot)
	}
}

func TestNextClasses_HonorsLimit(t *testing.T) {
	db := newTestDB(t)

	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri"} {
		if _, err := db.AddTimetableEntry("B1", day, "6-7", "Science", nil); err != nil {
			t.Fatalf("failed to add timetable entry: %v", err)
		}
	}

	entries, err := db.NextClassesFor("B1", 3)
	if err != nil {
		t.Fatalf("failed to get next classes: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestListTimetable_TeacherIDRoundTrip(t *testing.T) {
	db := newTestDB(t)

	teacherID := int64(42)
	if _, err := db.AddTimetableEntry("B1", "Mon", "6-7", "Science", &teacherID); err != nil {
		t.Fatalf("failed to add timetable entry: %v", err)
	}
	if _, err := db.AddTimetableEntry("B1", "Tue", "6-7", "Math", nil); err != nil {
		t.Fatalf("failed to add timetable entry: %v", err)
	}

	entries, err := db.ListTimetable("B1")
	if err != nil {
		t.Fatalf("failed to list timetable: %v", err)
	}
	if entries[0].TeacherID == nil || *entries[0].TeacherID != teacherID {
		t.Fatalf("expected teacher id %d, got %+v", teacherID, entries[0].TeacherID)
	}
	if entries[1].TeacherID != nil {
		t.Fatalf("expected nil teacher id, got %d", *entries[1].TeacherID)
	}
}
