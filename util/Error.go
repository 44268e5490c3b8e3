package util

import (
	"strings"
)

// IsDuplicateKeyError checks if the error is a database constraint violation.
// The string checks cover Postgres "SQLSTATE 23505" and the sqlite driver
// used in tests.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
