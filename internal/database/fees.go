package database

import (
	"database/sql"
	"fmt"
)

// FeeRecord is the single fees row kept per student.
type FeeRecord struct {
	StudentID       int64   `json:"student_id"`
	AmountPaid      float64 `json:"amount_paid"`
	PendingAmount   float64 `json:"pending_amount"`
	LastPaymentDate string  `json:"last_payment_date"`
}

// RecordPayment upserts the student's fees row, fully overwriting the paid
// and pending amounts and the last payment date. Repeated identical calls
// leave the row unchanged.
func (db *DB) RecordPayment(studentID int64, amountPaid, pendingAmount float64, date string) error {
	_, err := db.Exec(`
		INSERT INTO fees (student_id, amount_paid, pending_amount, last_payment_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(student_id) DO UPDATE SET
			amount_paid = excluded.amount_paid,
			pending_amount = excluded.pending_amount,
			last_payment_date = excluded.last_payment_date
	`, studentID, amountPaid, pendingAmount, date)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}

// GetFees returns the student's fees row, or (nil, nil) when none exists.
func (db *DB) GetFees(studentID int64) (*FeeRecord, error) {
	var (
		rec      FeeRecord
		lastDate sql.NullString
	)
	err := db.QueryRow(`
		SELECT student_id, amount_paid, pending_amount, last_payment_date
		FROM fees WHERE student_id = ?
	`, studentID).Scan(&rec.StudentID, &rec.AmountPaid, &rec.PendingAmount, &lastDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fees: %w", err)
	}
	rec.LastPaymentDate = nullStringValue(lastDate)
	return &rec, nil
}

// TotalFeesCollected sums amount_paid across all students. The empty sum
// is zero.
func (db *DB) TotalFeesCollected() (float64, error) {
	var total float64
	err := db.QueryRow("SELECT COALESCE(SUM(amount_paid), 0) FROM fees").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to total fees: %w", err)
	}
	return total, nil
}
