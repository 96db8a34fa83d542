package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a unique-constraint violation.
// Checks the postgres error code first, then falls back to message matching
// so the SQLite test database behaves the same way.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
