package facility

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogDomain "fieldservice-backend/internal/domain/catalog"
	domain "fieldservice-backend/internal/domain/facility"
	"fieldservice-backend/pkg/slug"
)

type Usecase struct {
	repo    domain.Repository
	catalog catalogDomain.Repository
}

func NewUsecase(repo domain.Repository, catalog catalogDomain.Repository) *Usecase {
	return &Usecase{repo: repo, catalog: catalog}
}

type CreateInput struct {
	TypeOfHealthFacilityID uint64   `json:"type_of_health_facility_id" validate:"required"`
	Name                   string   `json:"name" validate:"required,max=255"`
	Email                  string   `json:"email" validate:"omitempty,email,max=255"`
	City                   string   `json:"city" validate:"omitempty,max=255"`
	PhoneNumber            string   `json:"phone_number" validate:"omitempty,max=20"`
	Address                string   `json:"address"`
	Lat                    *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng                    *float64 `json:"lng" validate:"omitempty,longitude"`
}

type UpdateInput struct {
	ID                     uint64
	TypeOfHealthFacilityID *uint64  `json:"type_of_health_facility_id"`
	Name                   *string  `json:"name" validate:"omitempty,max=255"`
	Email                  *string  `json:"email" validate:"omitempty,email,max=255"`
	City                   *string  `json:"city" validate:"omitempty,max=255"`
	PhoneNumber            *string  `json:"phone_number" validate:"omitempty,max=20"`
	Address                *string  `json:"address"`
	Lat                    *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng                    *float64 `json:"lng" validate:"omitempty,longitude"`
}

// ErrUnknownType flags a create or update referencing a facility type that
// does not exist.
var ErrUnknownType = errors.New("type_of_health_facility_id does not reference an existing facility type")

func (u *Usecase) List(ctx context.Context, f domain.ListFilter) ([]domain.HealthFacility, int64, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.HealthFacility, error) {
	hf, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return hf, nil
}

func (u *Usecase) GetBySlug(ctx context.Context, s string) (*domain.HealthFacility, error) {
	hf, err := u.repo.GetBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return hf, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.HealthFacility, error) {
	if _, err := u.catalog.GetFacilityTypeByID(ctx, in.TypeOfHealthFacilityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownType
		}
		return nil, err
	}
	s, err := slug.Unique(in.Name, func(s string) (bool, error) {
		return u.repo.SlugExists(ctx, s, 0)
	})
	if err != nil {
		return nil, err
	}
	hf := &domain.HealthFacility{
		TypeOfHealthFacilityID: in.TypeOfHealthFacilityID,
		Name:                   in.Name,
		Slug:                   s,
		Email:                  in.Email,
		City:                   in.City,
		PhoneNumber:            in.PhoneNumber,
		Address:                in.Address,
		Lat:                    in.Lat,
		Lng:                    in.Lng,
	}
	if err := u.repo.Create(ctx, hf); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return hf, nil
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*domain.HealthFacility, error) {
	hf, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if in.TypeOfHealthFacilityID != nil {
		if _, err := u.catalog.GetFacilityTypeByID(ctx, *in.TypeOfHealthFacilityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownType
			}
			return nil, err
		}
		hf.TypeOfHealthFacilityID = *in.TypeOfHealthFacilityID
	}
	if in.Name != nil && *in.Name != hf.Name {
		s, err := slug.Unique(*in.Name, func(s string) (bool, error) {
			return u.repo.SlugExists(ctx, s, hf.ID)
		})
		if err != nil {
			return nil, err
		}
		hf.Name = *in.Name
		hf.Slug = s
	}
	if in.Email != nil {
		hf.Email = *in.Email
	}
	if in.City != nil {
		hf.City = *in.City
	}
	if in.PhoneNumber != nil {
		hf.PhoneNumber = *in.PhoneNumber
	}
	if in.Address != nil {
		hf.Address = *in.Address
	}
	if in.Lat != nil {
		hf.Lat = in.Lat
	}
	if in.Lng != nil {
		hf.Lng = in.Lng
	}
	if err := u.repo.Save(ctx, hf); err != nil {
		return nil, err
	}
	return hf, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	hf, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, hf)
}

// AttachDevices links medical devices to the facility; existing links are
// kept, duplicates are idempotent.
func (u *Usecase) AttachDevices(ctx context.Context, facilityID uint64, deviceIDs []uint64) (*domain.HealthFacility, error) {
	hf, err := u.repo.GetByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := u.repo.AttachDevices(ctx, hf, deviceIDs); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, facilityID)
}

func (u *Usecase) DetachDevice(ctx context.Context, facilityID, deviceID uint64) error {
	hf, err := u.repo.GetByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.DetachDevice(ctx, hf, deviceID)
}
