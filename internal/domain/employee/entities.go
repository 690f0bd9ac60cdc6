package employee

import (
	"errors"
	"time"

	"fieldservice-backend/internal/domain/user"
)

var (
	ErrNotFound    = errors.New("employee not found")
	ErrNIKTaken    = errors.New("nik already registered")
	ErrNumberTaken = errors.New("employee number already registered")
)

type Employee struct {
	ID             uint64     `gorm:"primaryKey;column:id" json:"id"`
	UserID         uint64     `gorm:"not null;index" json:"user_id"`
	RegionID       uint64     `gorm:"not null" json:"region_id"`
	DivisionID     uint64     `gorm:"not null" json:"division_id"`
	PositionID     uint64     `gorm:"not null" json:"position_id"`
	EmployeeNumber string     `gorm:"size:50;not null;uniqueIndex:ux_employees_number" json:"employee_number"`
	NIK            string     `gorm:"column:nik;size:16;not null;uniqueIndex:ux_employees_nik" json:"nik"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Gender         string     `gorm:"size:20" json:"gender"`
	PlaceOfBirth   string     `gorm:"size:255" json:"place_of_birth"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth"`
	PhoneNumber    string     `gorm:"size:20" json:"phone_number"`
	Email          string     `gorm:"size:255" json:"email"`
	Address        string     `gorm:"size:255" json:"address"`
	Status         string     `gorm:"size:50" json:"status"`
	DateOfEntry    *time.Time `gorm:"type:date" json:"date_of_entry"`
	IsActive       bool       `json:"is_active"`
	Photo          string     `gorm:"size:255" json:"photo"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User     *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Region   *Region    `gorm:"foreignKey:RegionID" json:"region,omitempty"`
	Division *Division  `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
	Position *Position  `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}

func (Employee) TableName() string { return "employees" }

type Region struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;uniqueIndex:ux_regions_slug" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Region) TableName() string { return "regions" }

type Division struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;uniqueIndex:ux_divisions_slug" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Division) TableName() string { return "divisions" }

type Position struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;uniqueIndex:ux_positions_slug" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Position) TableName() string { return "positions" }
