package database

import "testing"

func TestRecordPayment_OverwritesNotAccumulates(t *testing.T) {
	db := newTestDB(t)
	id := addTestStudent(t, db, "Asha", "asha", "B1")

	if err := db.RecordPayment(id, 1000, 500, "2024-01-01"); err != nil {
		t.Fatalf("failed to record payment: %v", err)
	}
	if err := db.RecordPayment(id, 1200, 300, "2024-02-01"); err != nil {
		t.Fatalf("failed to record second payment: %v", err)
	}

	fees, err := db.GetFees(id)
	if err != nil {
		t.Fatalf("failed to get fees: %v", err)
	}
	if fees == nil {
		t.Fatal("expected fees row")
	}
	if fees.AmountPaid != 1200 || fees.PendingAmount != 300 || fees.LastPaymentDate != "2024-02-01" {
		t.Fatalf("expected full overwrite, got %+v", fees)
	}
}

func TestRecordPayment_IdempotentUnderRepeats(t *testing.T) {
	db := newTestDB(t)
	id := addTestStudent(t, db, "Asha", "asha", "B1")

	for range 3 {
		if err := db.RecordPayment(id, 750, 250, "2024-03-01"); err != nil {
			t.Fatalf("failed to record payment: %v", err)
		}
	}

	fees, err := db.GetFees(id)
	if err != nil {
		t.Fatalf("failed to get fees: %v", err)
	}
	if fees.AmountPaid != 750 || fees.PendingAmount != 250 {
		t.Fatalf("expected identical repeated payments to be idempotent, got %+v", fees)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM fees WHERE student_id = ?", id).Scan(&count); err != nil {
		t.Fatalf("failed to count fees rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one fees row, got %d", count)
	}
}

func TestGetFees_NotFound(t *testing.T) {
	db := newTestDB(t)

	fees, err := db.GetFees(999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fees != nil {
		t.Fatalf("expected nil for missing fees row, got %+v", fees)
	}
}

func TestTotalFeesCollected(t *testing.T) {
	db := newTestDB(t)

	// Empty sum is zero
	total, err := db.TotalFeesCollected()
	if err != nil {
		t.Fatalf("failed to total fees: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 for empty table, got %v", total)
	}

	a := addTestStudent(t, db, "A", "a", "B1")
	b := addTestStudent(t, db, "B", "b", "B1")
	if err := db.RecordPayment(a, 1000, 0, "2024-01-01"); err != nil {
		t.Fatalf("failed to record payment: %v", err)
	}
	if err := db.RecordPayment(b, 250.50, 0, "2024-01-02"); err != nil {
		t.Fatalf("failed to record payment: %v", err)
	}

	total, err = db.TotalFeesCollected()
	if err != nil {
		t.Fatalf("failed to total fees: %v", err)
	}
	if total != 1250.50 {
		t.Fatalf("expected 1250.50, got %v", total)
	}
}
