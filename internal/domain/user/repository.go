package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	// GetByIDWithAccess preloads role and permissions for authorization checks.
	GetByIDWithAccess(ctx context.Context, id uint64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, u *User) error
	// EmailExists checks uniqueness; excludeID skips a row during updates (0 = none).
	EmailExists(ctx context.Context, email string, excludeID uint64) (bool, error)

	ListRoles(ctx context.Context) ([]Role, error)
	ListPermissions(ctx context.Context) ([]Permission, error)
}
