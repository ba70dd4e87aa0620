package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// isSerializationFailure reports errors PostgreSQL expects the client to retry.
func isSerializationFailure(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "40001") || // serialization_failure
		strings.Contains(errMsg, "40p01") || // deadlock_detected
		strings.Contains(errMsg, "could not serialize access")
}

func isRetryable(err error) bool {
	return isUniqueConstraintViolation(err) || isSerializationFailure(err)
}
