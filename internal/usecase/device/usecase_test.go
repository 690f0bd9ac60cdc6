package device

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	catalogDomain "fieldservice-backend/internal/domain/catalog"
	domain "fieldservice-backend/internal/domain/device"
	"fieldservice-backend/internal/testutil/catalogmock"
	"fieldservice-backend/internal/testutil/devicemock"
)

func knownCategories() *catalogmock.Repo {
	return &catalogmock.Repo{
		GetDeviceCategoryByIDFn: func(ctx context.Context, id uint64) (*catalogDomain.MedicalDeviceCategory, error) {
			return &catalogDomain.MedicalDeviceCategory{ID: id}, nil
		},
	}
}

func TestCreate_DefaultsStatusActive(t *testing.T) {
	var created *domain.MedicalDevice
	repo := &devicemock.Repo{
		CreateFn: func(ctx context.Context, d *domain.MedicalDevice) error {
			d.ID = 1
			created = d
			return nil
		},
	}
	uc := NewUsecase(repo, knownCategories())

	d, err := uc.Create(context.Background(), CreateInput{
		MedicalDeviceCategoryID: 2,
		Brand:                   "GE",
		Model:                   "Logiq E10",
		SerialNumber:            "SN-001",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if d.Status != 1 {
		t.Fatalf("status=%d", d.Status)
	}
	if created.SerialNumber != "SN-001" {
		t.Fatalf("created: %+v", created)
	}
}

func TestCreate_SerialTaken(t *testing.T) {
	repo := &devicemock.Repo{
		SerialExistsFn: func(context.Context, string, uint64) (bool, error) {
			return true, nil
		},
	}
	uc := NewUsecase(repo, knownCategories())

	if _, err := uc.Create(context.Background(), CreateInput{
		MedicalDeviceCategoryID: 2, Brand: "GE", Model: "X", SerialNumber: "SN-001",
	}); !errors.Is(err, domain.ErrSerialTaken) {
		t.Fatalf("want ErrSerialTaken, got %v", err)
	}
}

func TestCreate_UnknownCategory(t *testing.T) {
	catalog := &catalogmock.Repo{
		GetDeviceCategoryByIDFn: func(context.Context, uint64) (*catalogDomain.MedicalDeviceCategory, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(&devicemock.Repo{}, catalog)

	if _, err := uc.Create(context.Background(), CreateInput{
		MedicalDeviceCategoryID: 9, Brand: "GE", Model: "X", SerialNumber: "SN-001",
	}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("want ErrUnknownCategory, got %v", err)
	}
}

func TestUpdate_SerialConflictOnlyWhenChanged(t *testing.T) {
	repo := &devicemock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.MedicalDevice, error) {
			return &domain.MedicalDevice{ID: id, SerialNumber: "SN-001"}, nil
		},
		SerialExistsFn: func(context.Context, string, uint64) (bool, error) {
			t.Fatal("unchanged serial must not be re-checked")
			return false, nil
		},
	}
	uc := NewUsecase(repo, knownCategories())

	same := "SN-001"
	if _, err := uc.Update(context.Background(), UpdateInput{ID: 1, SerialNumber: &same}); err != nil {
		t.Fatalf("Update err: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &devicemock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.MedicalDevice, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo, knownCategories())

	if err := uc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
