package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "fieldservice-backend/internal/domain/user"
	"fieldservice-backend/internal/testutil/usermock"
)

func TestUpdate_ChangesEmailAfterUniquenessCheck(t *testing.T) {
	var saved *domain.User
	repo := &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Old", Email: "old@example.com"}, nil
		},
		EmailExistsFn: func(ctx context.Context, email string, excludeID uint64) (bool, error) {
			if excludeID != 3 {
				t.Fatalf("excludeID=%d", excludeID)
			}
			return false, nil
		},
		SaveFn: func(ctx context.Context, u *domain.User) error {
			saved = u
			return nil
		},
	}
	uc := NewUsecase(repo)

	email := "new@example.com"
	if _, err := uc.Update(context.Background(), UpdateInput{ID: 3, Email: &email}); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if saved.Email != "new@example.com" {
		t.Fatalf("email=%s", saved.Email)
	}
}

func TestUpdate_EmailTaken(t *testing.T) {
	repo := &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.User, error) {
			return &domain.User{ID: id, Email: "old@example.com"}, nil
		},
		EmailExistsFn: func(context.Context, string, uint64) (bool, error) {
			return true, nil
		},
	}
	uc := NewUsecase(repo)

	email := "dup@example.com"
	if _, err := uc.Update(context.Background(), UpdateInput{ID: 3, Email: &email}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestUpdate_RehashesPassword(t *testing.T) {
	var saved *domain.User
	repo := &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.User, error) {
			return &domain.User{ID: id, Password: "oldhash"}, nil
		},
		SaveFn: func(ctx context.Context, u *domain.User) error {
			saved = u
			return nil
		},
	}
	uc := NewUsecase(repo)

	pw := "brandnewpass"
	if _, err := uc.Update(context.Background(), UpdateInput{ID: 3, Password: &pw}); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte(pw)); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &usermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)

	if _, err := uc.Update(context.Background(), UpdateInput{ID: 3}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &usermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)

	if err := uc.Delete(context.Background(), 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
