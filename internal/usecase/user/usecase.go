package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "fieldservice-backend/internal/domain/user"
)

type Usecase struct {
	repo domain.Repository
}

func NewUsecase(repo domain.Repository) *Usecase {
	return &Usecase{repo: repo}
}

type UpdateInput struct {
	ID       uint64
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	RoleID   *uint64 `json:"role_id"`
}

func (u *Usecase) List(ctx context.Context) ([]domain.User, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.User, error) {
	usr, err := u.repo.GetByIDWithAccess(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*domain.User, error) {
	usr, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if in.Email != nil && *in.Email != usr.Email {
		taken, err := u.repo.EmailExists(ctx, *in.Email, usr.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		usr.Email = *in.Email
	}
	if in.Name != nil {
		usr.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usr.Password = string(hash)
	}
	if in.RoleID != nil {
		usr.RoleID = in.RoleID
	}
	if err := u.repo.Save(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, usr)
}

func (u *Usecase) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return u.repo.ListRoles(ctx)
}

func (u *Usecase) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	return u.repo.ListPermissions(ctx)
}
