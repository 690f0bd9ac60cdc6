package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid login credentials")
)

type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	RoleID    *uint64   `gorm:"column:role_id" json:"role_id"`
	Role      *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

type Role struct {
	ID          uint64       `gorm:"primaryKey;column:id" json:"id"`
	Name        string       `gorm:"size:255;not null;uniqueIndex:ux_roles_name" json:"name"`
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string { return "roles" }

type Permission struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:ux_permissions_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Permission) TableName() string { return "permissions" }

// HasPermission reports whether the user's role carries the named permission.
func (u *User) HasPermission(name string) bool {
	if u == nil || u.Role == nil {
		return false
	}
	for _, p := range u.Role.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}
