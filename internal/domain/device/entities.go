package device

import (
	"errors"
	"time"

	"fieldservice-backend/internal/domain/catalog"
)

var (
	ErrNotFound    = errors.New("medical device not found")
	ErrSerialTaken = errors.New("serial number already registered")
)

type MedicalDevice struct {
	ID                      uint64    `gorm:"primaryKey;column:id" json:"id"`
	MedicalDeviceCategoryID uint64    `gorm:"not null" json:"medical_device_category_id"`
	Brand                   string    `gorm:"size:255;not null" json:"brand"`
	Model                   string    `gorm:"size:255;not null" json:"model"`
	SerialNumber            string    `gorm:"size:255;not null;uniqueIndex:ux_medical_devices_serial" json:"serial_number"`
	SoftwareVersion         string    `gorm:"size:255" json:"software_version"`
	Status                  int8      `gorm:"default:1" json:"status"`
	Notes                   string    `gorm:"type:text" json:"notes"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Category *catalog.MedicalDeviceCategory `gorm:"foreignKey:MedicalDeviceCategoryID" json:"category,omitempty"`
}

func (MedicalDevice) TableName() string { return "medical_devices" }
