// Package catalog manages the four reference tables behind reports and
// facilities: work types, completion statuses, device categories and
// facility types. Slugs are generated from names and kept unique per table.
package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/pkg/slug"
)

type Usecase struct {
	repo domain.Repository
}

func NewUsecase(repo domain.Repository) *Usecase {
	return &Usecase{repo: repo}
}

type CreateInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type UpdateInput struct {
	ID          uint64
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// ----- work types -----

func (u *Usecase) ListWorkTypes(ctx context.Context, f domain.ListFilter) ([]domain.TypeOfWork, int64, error) {
	return u.repo.ListWorkTypes(ctx, f)
}

func (u *Usecase) GetWorkType(ctx context.Context, id uint64) (*domain.TypeOfWork, error) {
	w, err := u.repo.GetWorkTypeByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return w, nil
}

func (u *Usecase) GetWorkTypeBySlug(ctx context.Context, s string) (*domain.TypeOfWork, error) {
	w, err := u.repo.GetWorkTypeBySlug(ctx, s)
	if err != nil {
		return nil, notFound(err)
	}
	return w, nil
}

func (u *Usecase) CreateWorkType(ctx context.Context, in CreateInput) (*domain.TypeOfWork, error) {
	s, err := slug.Unique(in.Name, func(s string) (bool, error) {
		return u.repo.WorkTypeSlugExists(ctx, s, 0)
	})
	if err != nil {
		return nil, err
	}
	w := &domain.TypeOfWork{Name: in.Name, Slug: s}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if err := u.repo.CreateWorkType(ctx, w); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return w, nil
}

func (u *Usecase) UpdateWorkType(ctx context.Context, in UpdateInput) (*domain.TypeOfWork, error) {
	w, err := u.repo.GetWorkTypeByID(ctx, in.ID)
	if err != nil {
		return nil, notFound(err)
	}
	if in.Name != nil && *in.Name != w.Name {
		s, err := slug.Unique(*in.Name, func(s string) (bool, error) {
			return u.repo.WorkTypeSlugExists(ctx, s, w.ID)
		})
		if err != nil {
			return nil, err
		}
		w.Name = *in.Name
		w.Slug = s
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if err := u.repo.SaveWorkType(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (u *Usecase) DeleteWorkType(ctx context.Context, id uint64) error {
	w, err := u.repo.GetWorkTypeByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	return u.repo.DeleteWorkType(ctx, w)
}

// ----- completion statuses -----

func (u *Usecase) ListCompletionStatuses(ctx context.Context, f domain.ListFilter) ([]domain.CompletionStatus, int64, error) {
	return u.repo.ListCompletionStatuses(ctx, f)
}

func (u *Usecase) GetCompletionStatus(ctx context.Context, id uint64) (*domain.CompletionStatus, error) {
	s, err := u.repo.GetCompletionStatusByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (u *Usecase) GetCompletionStatusBySlug(ctx context.Context, s string) (*domain.CompletionStatus, error) {
	v, err := u.repo.GetCompletionStatusBySlug(ctx, s)
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

func (u *Usecase) CreateCompletionStatus(ctx context.Context, in CreateInput) (*domain.CompletionStatus, error) {
	sl, err := slug.Unique(in.Name, func(s string) (bool, error) {
		return u.repo.CompletionStatusSlugExists(ctx, s, 0)
	})
	if err != nil {
		return nil, err
	}
	cs := &domain.CompletionStatus{Name: in.Name, Slug: sl}
	if in.Description != nil {
		cs.Description = *in.Description
	}
	if err := u.repo.CreateCompletionStatus(ctx, cs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return cs, nil
}

func (u *Usecase) UpdateCompletionStatus(ctx context.Context, in UpdateInput) (*domain.CompletionStatus, error) {
	cs, err := u.repo.GetCompletionStatusByID(ctx, in.ID)
	if err != nil {
		return nil, notFound(err)
	}
	if in.Name != nil && *in.Name != cs.Name {
		sl, err := slug.Unique(*in.Name, func(s string) (bool, error) {
			return u.repo.CompletionStatusSlugExists(ctx, s, cs.ID)
		})
		if err != nil {
			return nil, err
		}
		cs.Name = *in.Name
		cs.Slug = sl
	}
	if in.Description != nil {
		cs.Description = *in.Description
	}
	if err := u.repo.SaveCompletionStatus(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (u *Usecase) DeleteCompletionStatus(ctx context.Context, id uint64) error {
	cs, err := u.repo.GetCompletionStatusByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	return u.repo.DeleteCompletionStatus(ctx, cs)
}

// ----- device categories -----

func (u *Usecase) ListDeviceCategories(ctx context.Context, f domain.ListFilter) ([]domain.MedicalDeviceCategory, int64, error) {
	return u.repo.ListDeviceCategories(ctx, f)
}

func (u *Usecase) GetDeviceCategory(ctx context.Context, id uint64) (*domain.MedicalDeviceCategory, error) {
	c, err := u.repo.GetDeviceCategoryByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (u *Usecase) GetDeviceCategoryBySlug(ctx context.Context, s string) (*domain.MedicalDeviceCategory, error) {
	v, err := u.repo.GetDeviceCategoryBySlug(ctx, s)
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

func (u *Usecase) CreateDeviceCategory(ctx context.Context, in CreateInput) (*domain.MedicalDeviceCategory, error) {
	s, err := slug.Unique(in.Name, func(s string) (bool, error) {
		return u.repo.DeviceCategorySlugExists(ctx, s, 0)
	})
	if err != nil {
		return nil, err
	}
	c := &domain.MedicalDeviceCategory{Name: in.Name, Slug: s}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if err := u.repo.CreateDeviceCategory(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return c, nil
}

func (u *Usecase) UpdateDeviceCategory(ctx context.Context, in UpdateInput) (*domain.MedicalDeviceCategory, error) {
	c, err := u.repo.GetDeviceCategoryByID(ctx, in.ID)
	if err != nil {
		return nil, notFound(err)
	}
	if in.Name != nil && *in.Name != c.Name {
		s, err := slug.Unique(*in.Name, func(s string) (bool, error) {
			return u.repo.DeviceCategorySlugExists(ctx, s, c.ID)
		})
		if err != nil {
			return nil, err
		}
		c.Name = *in.Name
		c.Slug = s
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if err := u.repo.SaveDeviceCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) DeleteDeviceCategory(ctx context.Context, id uint64) error {
	c, err := u.repo.GetDeviceCategoryByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	return u.repo.DeleteDeviceCategory(ctx, c)
}

// ----- facility types -----

func (u *Usecase) ListFacilityTypes(ctx context.Context, f domain.ListFilter) ([]domain.TypeOfHealthFacility, int64, error) {
	return u.repo.ListFacilityTypes(ctx, f)
}

func (u *Usecase) GetFacilityType(ctx context.Context, id uint64) (*domain.TypeOfHealthFacility, error) {
	ft, err := u.repo.GetFacilityTypeByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return ft, nil
}

func (u *Usecase) GetFacilityTypeBySlug(ctx context.Context, s string) (*domain.TypeOfHealthFacility, error) {
	v, err := u.repo.GetFacilityTypeBySlug(ctx, s)
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

func (u *Usecase) CreateFacilityType(ctx context.Context, in CreateInput) (*domain.TypeOfHealthFacility, error) {
	s, err := slug.Unique(in.Name, func(s string) (bool, error) {
		return u.repo.FacilityTypeSlugExists(ctx, s, 0)
	})
	if err != nil {
		return nil, err
	}
	ft := &domain.TypeOfHealthFacility{Name: in.Name, Slug: s}
	if in.Description != nil {
		ft.Description = *in.Description
	}
	if err := u.repo.CreateFacilityType(ctx, ft); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return ft, nil
}

func (u *Usecase) UpdateFacilityType(ctx context.Context, in UpdateInput) (*domain.TypeOfHealthFacility, error) {
	ft, err := u.repo.GetFacilityTypeByID(ctx, in.ID)
	if err != nil {
		return nil, notFound(err)
	}
	if in.Name != nil && *in.Name != ft.Name {
		s, err := slug.Unique(*in.Name, func(s string) (bool, error) {
			return u.repo.FacilityTypeSlugExists(ctx, s, ft.ID)
		})
		if err != nil {
			return nil, err
		}
		ft.Name = *in.Name
		ft.Slug = s
	}
	if in.Description != nil {
		ft.Description = *in.Description
	}
	if err := u.repo.SaveFacilityType(ctx, ft); err != nil {
		return nil, err
	}
	return ft, nil
}

func (u *Usecase) DeleteFacilityType(ctx context.Context, id uint64) error {
	ft, err := u.repo.GetFacilityTypeByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	return u.repo.DeleteFacilityType(ctx, ft)
}
