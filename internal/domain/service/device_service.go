package service

import "devicestore/internal/domain/entity"

// DeviceFingerprinter describes the local device for new registrations.
type DeviceFingerprinter interface {
	Detect() entity.DeviceFingerprint
}

// IDGenerator mints collision-resistant identifiers.
type IDGenerator interface {
	Generate() string
}
