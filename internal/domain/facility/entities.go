package facility

import (
	"errors"
	"time"

	"fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/internal/domain/device"
)

var (
	ErrNotFound  = errors.New("health facility not found")
	ErrSlugTaken = errors.New("slug already in use")
)

type HealthFacility struct {
	ID                     uint64    `gorm:"primaryKey;column:id" json:"id"`
	TypeOfHealthFacilityID uint64    `gorm:"not null" json:"type_of_health_facility_id"`
	Name                   string    `gorm:"size:255;not null" json:"name"`
	Slug                   string    `gorm:"size:255;not null;uniqueIndex:ux_health_facilities_slug" json:"slug"`
	Email                  string    `gorm:"size:255" json:"email"`
	City                   string    `gorm:"size:255" json:"city"`
	PhoneNumber            string    `gorm:"size:20" json:"phone_number"`
	Address                string    `gorm:"type:text" json:"address"`
	Lat                    *float64  `json:"lat"`
	Lng                    *float64  `json:"lng"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Type           *catalog.TypeOfHealthFacility `gorm:"foreignKey:TypeOfHealthFacilityID" json:"type,omitempty"`
	MedicalDevices []device.MedicalDevice        `gorm:"many2many:health_facility_medical_devices" json:"medical_devices,omitempty"`
}

func (HealthFacility) TableName() string { return "health_facilities" }
