// Package catalog holds the small slug-addressed reference tables shared by
// the rest of the model: work types, completion statuses, device categories
// and facility types.
package catalog

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("catalog entry not found")
	ErrSlugTaken = errors.New("slug already in use")
)

// Completion status ids carry workflow meaning for report completion.
const (
	CompletionStatusResolved   uint64 = 1
	CompletionStatusUnresolved uint64 = 2
)

type TypeOfWork struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex:ux_type_of_works_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TypeOfWork) TableName() string { return "type_of_works" }

type CompletionStatus struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex:ux_completion_statuses_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CompletionStatus) TableName() string { return "completion_statuses" }

type MedicalDeviceCategory struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex:ux_medical_device_categories_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalDeviceCategory) TableName() string { return "medical_device_categories" }

type TypeOfHealthFacility struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex:ux_type_of_health_facilities_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TypeOfHealthFacility) TableName() string { return "type_of_health_facilities" }
