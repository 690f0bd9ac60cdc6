package usermock

import (
	"context"
	"errors"

	domain "fieldservice-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, u *domain.User) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.User, error)
	GetByIDWithAccessFn func(ctx context.Context, id uint64) (*domain.User, error)
	GetByEmailFn        func(ctx context.Context, email string) (*domain.User, error)
	ListFn              func(ctx context.Context) ([]domain.User, error)
	SaveFn              func(ctx context.Context, u *domain.User) error
	DeleteFn            func(ctx context.Context, u *domain.User) error
	EmailExistsFn       func(ctx context.Context, email string, excludeID uint64) (bool, error)
	ListRolesFn         func(ctx context.Context) ([]domain.Role, error)
	ListPermissionsFn   func(ctx context.Context) ([]domain.Permission, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDWithAccess(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDWithAccessFn != nil {
		return m.GetByIDWithAccessFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, u *domain.User) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, u)
	}
	return nil
}

func (m *Repo) EmailExists(ctx context.Context, email string, excludeID uint64) (bool, error) {
	if m.EmailExistsFn != nil {
		return m.EmailExistsFn(ctx, email, excludeID)
	}
	return false, nil
}

func (m *Repo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	if m.ListRolesFn != nil {
		return m.ListRolesFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	if m.ListPermissionsFn != nil {
		return m.ListPermissionsFn(ctx)
	}
	return nil, errUnimplemented
}
