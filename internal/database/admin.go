package database

import (
	"database/sql"
	"fmt"
)

// AdminRecord is a stored admin credential. The password is plain text;
// comparison is the caller's job.
type AdminRecord struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// GetAdmin retrieves the stored credential row for username.
// Returns (nil, nil) when no such admin exists.
func (db *DB) GetAdmin(username string) (*AdminRecord, error) {
	admin := &AdminRecord{}
	err := db.QueryRow(`
		SELECT username, password FROM admin WHERE username = ?
	`, username).Scan(&admin.Username, &admin.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// UpdateAdminPassword replaces the stored password for username.
func (db *DB) UpdateAdminPassword(username, password string) error {
	_, err := db.Exec("UPDATE admin SET password = ? WHERE username = ?", password, username)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	return nil
}
