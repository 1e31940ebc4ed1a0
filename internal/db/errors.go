package db

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
)

// SQLITE_CONSTRAINT is the low byte of every sqlite constraint result code
// (foreign key, unique, check).
const sqliteConstraint = 19

// IsConstraintViolation reports whether err is the storage engine rejecting
// a write over a declared constraint. The driver error code is authoritative;
// the message check is a fallback for wrapped errors and foreign drivers
// (the test harness among them) that only carry the engine's text.
func IsConstraintViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code()&0xff == sqliteConstraint
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key") || strings.Contains(msg, "constraint")
}
