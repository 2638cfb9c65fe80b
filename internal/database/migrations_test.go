package database

import (
	"path/filepath"
	"testing"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := db.Migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	admin, err := db.GetAdmin(DefaultAdminUsername)
	if err != nil {
		t.Fatalf("failed to get admin: %v", err)
	}
	if admin == nil {
		t.Fatal("expected seeded admin row")
	}
	if admin.Password != DefaultAdminPassword {
		t.Fatalf("expected seeded password %q, got %q", DefaultAdminPassword, admin.Password)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admin").Scan(&count); err != nil {
		t.Fatalf("failed to count admins: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one admin row, got %d", count)
	}
}

func TestMigrate_DoesNotOverwriteChangedAdminPassword(t *testing.T) {
	db := newTestDB(t)

	if err := db.UpdateAdminPassword(DefaultAdminUsername, "changed"); err != nil {
		t.Fatalf("failed to update password: %v", err)
	}

	if err := db.Migrate(); err != nil {
		t.Fatalf("re-migrate failed: %v", err)
	}

	admin, err := db.GetAdmin(DefaultAdminUsername)
	if err != nil {
		t.Fatalf("failed to get admin: %v", err)
	}
	if admin == nil || admin.Password != "changed" {
		t.Fatalf("expected changed password to survive re-initialization, got %+v", admin)
	}
}

func TestMigrate_AddsMissingColumnsToLegacySchema(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "legacy.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	// Simulate a database created before the contact columns existed
	if _, err := db.Exec(`
		CREATE TABLE students (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			age INTEGER,
			class TEXT,
			contact TEXT,
			email TEXT,
			username TEXT UNIQUE,
			password TEXT,
			batch TEXT
		)
	`); err != nil {
		t.Fatalf("failed to create legacy table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO students (name, username) VALUES ('Old Row', 'old')"); err != nil {
		t.Fatalf("failed to seed legacy row: %v", err)
	}

	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	for _, column := range []string{"parent_contact", "student_contact"} {
		exists, err := db.columnExists("students", column)
		if err != nil {
			t.Fatalf("failed to check column %s: %v", column, err)
		}
		if !exists {
			t.Fatalf("expected column %s to be added", column)
		}
	}

	// Existing data survives the additive migration
	student, err := db.GetStudentByUsername("old")
	if err != nil {
		t.Fatalf("failed to get legacy student: %v", err)
	}
	if student == nil || student.Name != "Old Row" {
		t.Fatalf("expected legacy row to survive, got %+v", student)
	}
}
