package device

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogDomain "fieldservice-backend/internal/domain/catalog"
	domain "fieldservice-backend/internal/domain/device"
)

type Usecase struct {
	repo    domain.Repository
	catalog catalogDomain.Repository
}

func NewUsecase(repo domain.Repository, catalog catalogDomain.Repository) *Usecase {
	return &Usecase{repo: repo, catalog: catalog}
}

// ErrUnknownCategory flags a create or update referencing a device category
// that does not exist.
var ErrUnknownCategory = errors.New("medical_device_category_id does not reference an existing category")

type CreateInput struct {
	MedicalDeviceCategoryID uint64 `json:"medical_device_category_id" validate:"required"`
	Brand                   string `json:"brand" validate:"required,max=255"`
	Model                   string `json:"model" validate:"required,max=255"`
	SerialNumber            string `json:"serial_number" validate:"required,max=255"`
	SoftwareVersion         string `json:"software_version" validate:"omitempty,max=255"`
	Status                  *int8  `json:"status"`
	Notes                   string `json:"notes"`
}

type UpdateInput struct {
	ID                      uint64
	MedicalDeviceCategoryID *uint64 `json:"medical_device_category_id"`
	Brand                   *string `json:"brand" validate:"omitempty,max=255"`
	Model                   *string `json:"model" validate:"omitempty,max=255"`
	SerialNumber            *string `json:"serial_number" validate:"omitempty,max=255"`
	SoftwareVersion         *string `json:"software_version" validate:"omitempty,max=255"`
	Status                  *int8   `json:"status"`
	Notes                   *string `json:"notes"`
}

func (u *Usecase) List(ctx context.Context, f domain.ListFilter) ([]domain.MedicalDevice, int64, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.MedicalDevice, error) {
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.MedicalDevice, error) {
	if _, err := u.catalog.GetDeviceCategoryByID(ctx, in.MedicalDeviceCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownCategory
		}
		return nil, err
	}
	taken, err := u.repo.SerialExists(ctx, in.SerialNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrSerialTaken
	}
	d := &domain.MedicalDevice{
		MedicalDeviceCategoryID: in.MedicalDeviceCategoryID,
		Brand:                   in.Brand,
		Model:                   in.Model,
		SerialNumber:            in.SerialNumber,
		SoftwareVersion:         in.SoftwareVersion,
		Notes:                   in.Notes,
		Status:                  1,
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	if err := u.repo.Create(ctx, d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSerialTaken
		}
		return nil, err
	}
	return d, nil
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*domain.MedicalDevice, error) {
	d, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if in.MedicalDeviceCategoryID != nil {
		if _, err := u.catalog.GetDeviceCategoryByID(ctx, *in.MedicalDeviceCategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownCategory
			}
			return nil, err
		}
		d.MedicalDeviceCategoryID = *in.MedicalDeviceCategoryID
	}
	if in.SerialNumber != nil && *in.SerialNumber != d.SerialNumber {
		taken, err := u.repo.SerialExists(ctx, *in.SerialNumber, d.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrSerialTaken
		}
		d.SerialNumber = *in.SerialNumber
	}
	if in.Brand != nil {
		d.Brand = *in.Brand
	}
	if in.Model != nil {
		d.Model = *in.Model
	}
	if in.SoftwareVersion != nil {
		d.SoftwareVersion = *in.SoftwareVersion
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	if in.Notes != nil {
		d.Notes = *in.Notes
	}
	if err := u.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, d)
}
