package facility

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	catalogDomain "fieldservice-backend/internal/domain/catalog"
	domain "fieldservice-backend/internal/domain/facility"
	"fieldservice-backend/internal/testutil/catalogmock"
	"fieldservice-backend/internal/testutil/facilitymock"
)

func knownTypes() *catalogmock.Repo {
	return &catalogmock.Repo{
		GetFacilityTypeByIDFn: func(ctx context.Context, id uint64) (*catalogDomain.TypeOfHealthFacility, error) {
			return &catalogDomain.TypeOfHealthFacility{ID: id}, nil
		},
	}
}

func TestCreate_GeneratesUniqueSlug(t *testing.T) {
	var created *domain.HealthFacility
	repo := &facilitymock.Repo{
		SlugExistsFn: func(ctx context.Context, slug string, excludeID uint64) (bool, error) {
			return slug == "rs-harapan", nil
		},
		CreateFn: func(ctx context.Context, hf *domain.HealthFacility) error {
			hf.ID = 1
			created = hf
			return nil
		},
	}
	uc := NewUsecase(repo, knownTypes())

	hf, err := uc.Create(context.Background(), CreateInput{
		TypeOfHealthFacilityID: 2,
		Name:                   "RS Harapan",
		City:                   "Bandung",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if hf.Slug != "rs-harapan-2" {
		t.Fatalf("slug=%s", hf.Slug)
	}
	if created.City != "Bandung" {
		t.Fatalf("created: %+v", created)
	}
}

func TestCreate_UnknownFacilityType(t *testing.T) {
	catalog := &catalogmock.Repo{
		GetFacilityTypeByIDFn: func(context.Context, uint64) (*catalogDomain.TypeOfHealthFacility, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(&facilitymock.Repo{}, catalog)

	if _, err := uc.Create(context.Background(), CreateInput{
		TypeOfHealthFacilityID: 9, Name: "X",
	}); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("want ErrUnknownType, got %v", err)
	}
}

func TestUpdate_RenameRegeneratesSlug(t *testing.T) {
	var saved *domain.HealthFacility
	repo := &facilitymock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.HealthFacility, error) {
			return &domain.HealthFacility{ID: id, Name: "RS Lama", Slug: "rs-lama"}, nil
		},
		SaveFn: func(ctx context.Context, hf *domain.HealthFacility) error {
			saved = hf
			return nil
		},
	}
	uc := NewUsecase(repo, knownTypes())

	name := "RS Baru"
	hf, err := uc.Update(context.Background(), UpdateInput{ID: 4, Name: &name})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if hf.Slug != "rs-baru" {
		t.Fatalf("slug=%s", hf.Slug)
	}
	if saved == nil || saved.Name != "RS Baru" {
		t.Fatalf("saved: %+v", saved)
	}
}

func TestAttachDevices(t *testing.T) {
	var attached []uint64
	repo := &facilitymock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.HealthFacility, error) {
			return &domain.HealthFacility{ID: id}, nil
		},
		AttachDevicesFn: func(ctx context.Context, hf *domain.HealthFacility, deviceIDs []uint64) error {
			attached = deviceIDs
			return nil
		},
	}
	uc := NewUsecase(repo, knownTypes())

	if _, err := uc.AttachDevices(context.Background(), 4, []uint64{1, 2}); err != nil {
		t.Fatalf("AttachDevices err: %v", err)
	}
	if len(attached) != 2 {
		t.Fatalf("attached=%v", attached)
	}
}

func TestDetachDevice_FacilityNotFound(t *testing.T) {
	repo := &facilitymock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.HealthFacility, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo, knownTypes())

	if err := uc.DetachDevice(context.Background(), 4, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
