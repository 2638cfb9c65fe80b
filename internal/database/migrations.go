package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Default credential seeded on first initialization. The password is stored
// in plain text; the login flow compares it verbatim.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin1"
)

const schema = `
	-- Admin credentials (seeded with one default row)
	CREATE TABLE IF NOT EXISTS admin (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		age INTEGER,
		class TEXT,
		contact TEXT,
		email TEXT,
		username TEXT UNIQUE,
		password TEXT,
		batch TEXT,
		parent_contact TEXT DEFAULT '' NOT NULL,
		student_contact TEXT
	);

	CREATE TABLE IF NOT EXISTS batches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE,
		subject TEXT,
		time TEXT
	);

	-- One row per (student, date); re-marking a date replaces the status
	CREATE TABLE IF NOT EXISTS attendance (
		student_id INTEGER,
		date TEXT,
		status TEXT,
		PRIMARY KEY (student_id, date)
	);

	-- One row per student, created zeroed alongside the student
	CREATE TABLE IF NOT EXISTS fees (
		student_id INTEGER PRIMARY KEY,
		amount_paid REAL DEFAULT 0,
		pending_amount REAL DEFAULT 0,
		last_payment_date TEXT
	);

	-- Append-only marks log, deliberately without a uniqueness constraint
	CREATE TABLE IF NOT EXISTS performance (
		student_id INTEGER,
		subject TEXT,
		marks REAL,
		date TEXT
	);

	CREATE TABLE IF NOT EXISTS teachers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		subjects TEXT,
		availability TEXT
	);

	CREATE TABLE IF NOT EXISTS timetable (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		batch TEXT,
		day TEXT,
		time_slot TEXT,
		subject TEXT,
		teacher_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS homework (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		batch TEXT,
		title TEXT,
		due_date TEXT,
		description TEXT,
		posted_at TEXT,
		is_optional INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		message_text TEXT,
		date_sent TEXT,
		sender_type TEXT,
		recipient TEXT
	);
`

type columnMigration struct {
	Table  string
	Column string
	DDL    string
}

// Additive column migrations for databases created by older releases. Each
// step is guarded by an existence check and is best-effort: a failure is
// logged and skipped so initialization never dies on one bad column.
var columnMigrations = []columnMigration{
	{"students", "parent_contact", "ALTER TABLE students ADD COLUMN parent_contact TEXT DEFAULT '' NOT NULL"},
	{"students", "student_contact", "ALTER TABLE students ADD COLUMN student_contact TEXT"},
	{"batches", "time", "ALTER TABLE batches ADD COLUMN time TEXT"},
	{"homework", "is_optional", "ALTER TABLE homework ADD COLUMN is_optional INTEGER DEFAULT 0"},
}

// Migrate creates all tables, applies additive column migrations, and seeds
// the default admin credential. Safe to run any number of times: tables use
// CREATE TABLE IF NOT EXISTS and the seed uses INSERT OR IGNORE, so an
// already-changed admin password is never overwritten.
func (db *DB) Migrate() error {
	log.Info().Msg("Initializing database schema")

	for i, stmt := range splitSQLStatements(schema) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w: %w", i+1, ErrStorageUnavailable, err)
		}
	}

	for _, m := range columnMigrations {
		exists, err := db.columnExists(m.Table, m.Column)
		if err != nil {
			log.Warn().Err(err).Str("table", m.Table).Str("column", m.Column).
				Msg("Column existence check failed; skipping migration step")
			continue
		}
		if exists {
			continue
		}
		log.Info().Str("table", m.Table).Str("column", m.Column).Msg("Adding column")
		if _, err := db.Exec(m.DDL); err != nil {
			log.Warn().Err(err).Str("table", m.Table).Str("column", m.Column).
				Msg("Column migration failed; continuing")
		}
	}

	if _, err := db.Exec(
		"INSERT OR IGNORE INTO admin (username, password) VALUES (?, ?)",
		DefaultAdminUsername, DefaultAdminPassword,
	); err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	log.Info().Msg("Database schema ready")
	return nil
}

// columnExists checks PRAGMA table_info for the given column.
func (db *DB) columnExists(table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("failed to scan table info for %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}

	return false, rows.Err()
}

// splitSQLStatements splits a SQL string into individual statements.
// It handles comments and only returns non-empty statements.
func splitSQLStatements(sql string) []string {
	var statements []string
	var current strings.Builder

	lines := strings.SplitSeq(sql, "\n")
	for line := range lines {
		trimmed := strings.TrimSpace(line)
		// Skip empty lines and comments
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		// Check if line ends with semicolon (statement complete)
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(current.String())
			if stmt != "" && stmt != ";" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	// Handle any remaining content without trailing semicolon
	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		statements = append(statements, remaining)
	}

	return statements
}
