package model

import (
	"time"

	"devicestore/internal/domain/entity"

	"gorm.io/datatypes"
)

// DeviceDocumentModel is the GORM-specific struct for the 'device_documents' table.
// One row holds one user's device map, mirroring a document at <collection>/<userID>.
type DeviceDocumentModel struct {
	Collection string                                        `gorm:"type:varchar(255);primaryKey"`
	UserID     string                                        `gorm:"type:varchar(255);primaryKey"`
	Devices    datatypes.JSONType[map[string]entity.Device] `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceDocumentModel) TableName() string {
	return "device_documents"
}

// ToDomain converts the row to a device document.
func (m *DeviceDocumentModel) ToDomain() *entity.UserDevices {
	doc := entity.NewUserDevices(m.UserID)
	for id, device := range m.Devices.Data() {
		doc.Devices[id] = device
	}

	return doc
}

// NewDeviceDocumentModel builds a row for doc in collection.
func NewDeviceDocumentModel(collection string, doc *entity.UserDevices) *DeviceDocumentModel {
	devices := doc.Devices
	if devices == nil {
		devices = map[string]entity.Device{}
	}

	return &DeviceDocumentModel{
		Collection: collection,
		UserID:     doc.UserID,
		Devices:    datatypes.NewJSONType(devices),
	}
}
