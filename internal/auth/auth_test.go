package auth

import (
	"path/filepath"
	"testing"

	"github.com/classdesk/classdesk/internal/database"
)

func newTestService(t *testing.T) (*Service, *database.DB) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewService(db), db
}

func TestAuthenticate_DefaultAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	identity, err := svc.Authenticate(database.DefaultAdminUsername, database.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity == nil {
		t.Fatal("expected seeded admin login to succeed")
	}
	if identity.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", identity.Role)
	}
}

func TestAuthenticate_Student(t *testing.T) {
	svc, db := newTestService(t)

	if _, err := db.AddStudent(&database.Student{
		Name:          "Asha",
		Username:      "asha",
		Password:      "pw123",
		Batch:         "B1",
		ParentContact: "9800000000",
	}); err != nil {
		t.Fatalf("failed to add student: %v", err)
	}

	identity, err := svc.Authenticate("asha", "pw123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity == nil || identity.Role != RoleStudent {
		t.Fatalf("expected student login, got %+v", identity)
	}
	if identity.Student == nil || identity.Student.Batch != "B1" {
		t.Fatalf("expected student profile on identity, got %+v", identity.Student)
	}
	if identity.Student.Password != "" {
		t.Fatal("expected password to be stripped from identity")
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	identity, err := svc.Authenticate(database.DefaultAdminUsername, "wrong")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("expected nil identity for wrong password, got %+v", identity)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	identity, err := svc.Authenticate("ghost", "pw")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("expected nil identity for unknown user, got %+v", identity)
	}
}
