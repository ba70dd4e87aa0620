// Package identifier mints device identifiers.
package identifier

import (
	"devicestore/internal/domain/service"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns a generator of random (v4) UUID strings.
func NewUUIDGenerator() service.IDGenerator {
	return uuidGenerator{}
}

// Generate returns a new random UUID.
func (uuidGenerator) Generate() string {
	return uuid.NewString()
}
