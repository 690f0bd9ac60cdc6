package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "fieldservice-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Preload("Role").First(&out, id)
	return &out, res.Error
}

func (r *UserRepository) GetByIDWithAccess(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Preload("Role.Permissions").First(&out, id)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Preload("Role.Permissions").Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Preload("Role").Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&userDomain.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) ListRoles(ctx context.Context) ([]userDomain.Role, error) {
	var out []userDomain.Role
	res := r.db.WithContext(ctx).Preload("Permissions").Order("id").Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListPermissions(ctx context.Context) ([]userDomain.Permission, error) {
	var out []userDomain.Permission
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
