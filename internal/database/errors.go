package database

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrStorageUnavailable marks failures to open or prepare the database file
// (missing directory permissions, unreadable file). Callers should treat it
// as fatal for the call but keep the process alive.
var ErrStorageUnavailable = errors.New("storage unavailable")

// IsConstraintViolation reports whether err was caused by a constraint
// conflict such as a duplicate student username. Callers use this to show a
// validation message instead of failing hard.
func IsConstraintViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
