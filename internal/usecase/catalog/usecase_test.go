package catalog

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domain "fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/internal/testutil/catalogmock"
)

func TestCreateWorkType_GeneratesSlug(t *testing.T) {
	var created *domain.TypeOfWork
	repo := &catalogmock.Repo{
		CreateWorkTypeFn: func(ctx context.Context, w *domain.TypeOfWork) error {
			w.ID = 1
			created = w
			return nil
		},
	}
	uc := NewUsecase(repo)

	w, err := uc.CreateWorkType(context.Background(), CreateInput{Name: "Preventive Maintenance"})
	if err != nil {
		t.Fatalf("CreateWorkType err: %v", err)
	}
	if w.Slug != "preventive-maintenance" {
		t.Fatalf("slug=%s", w.Slug)
	}
	if created == nil || created.Name != "Preventive Maintenance" {
		t.Fatalf("created: %+v", created)
	}
}

func TestCreateWorkType_SlugCollisionSuffixed(t *testing.T) {
	repo := &catalogmock.Repo{
		WorkTypeSlugExistsFn: func(ctx context.Context, slug string, excludeID uint64) (bool, error) {
			return slug == "kalibrasi", nil
		},
		CreateWorkTypeFn: func(ctx context.Context, w *domain.TypeOfWork) error {
			w.ID = 2
			return nil
		},
	}
	uc := NewUsecase(repo)

	w, err := uc.CreateWorkType(context.Background(), CreateInput{Name: "Kalibrasi"})
	if err != nil {
		t.Fatalf("CreateWorkType err: %v", err)
	}
	if w.Slug != "kalibrasi-2" {
		t.Fatalf("slug=%s", w.Slug)
	}
}

func TestUpdateCompletionStatus_RenameRegeneratesSlug(t *testing.T) {
	var saved *domain.CompletionStatus
	repo := &catalogmock.Repo{
		GetCompletionStatusByIDFn: func(ctx context.Context, id uint64) (*domain.CompletionStatus, error) {
			return &domain.CompletionStatus{ID: id, Name: "Selesai", Slug: "selesai"}, nil
		},
		SaveCompletionStatusFn: func(ctx context.Context, s *domain.CompletionStatus) error {
			saved = s
			return nil
		},
	}
	uc := NewUsecase(repo)

	name := "Belum Selesai"
	cs, err := uc.UpdateCompletionStatus(context.Background(), UpdateInput{ID: 2, Name: &name})
	if err != nil {
		t.Fatalf("UpdateCompletionStatus err: %v", err)
	}
	if cs.Slug != "belum-selesai" {
		t.Fatalf("slug=%s", cs.Slug)
	}
	if saved == nil || saved.Name != "Belum Selesai" {
		t.Fatalf("saved: %+v", saved)
	}
}

func TestGetDeviceCategory_NotFound(t *testing.T) {
	repo := &catalogmock.Repo{
		GetDeviceCategoryByIDFn: func(context.Context, uint64) (*domain.MedicalDeviceCategory, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)

	if _, err := uc.GetDeviceCategory(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteFacilityType_NotFound(t *testing.T) {
	repo := &catalogmock.Repo{
		GetFacilityTypeByIDFn: func(context.Context, uint64) (*domain.TypeOfHealthFacility, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)

	if err := uc.DeleteFacilityType(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
