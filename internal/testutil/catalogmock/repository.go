package catalogmock

import (
	"context"
	"errors"

	domain "fieldservice-backend/internal/domain/catalog"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("catalogmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListWorkTypesFn      func(ctx context.Context, f domain.ListFilter) ([]domain.TypeOfWork, int64, error)
	GetWorkTypeByIDFn    func(ctx context.Context, id uint64) (*domain.TypeOfWork, error)
	GetWorkTypeBySlugFn  func(ctx context.Context, slug string) (*domain.TypeOfWork, error)
	CreateWorkTypeFn     func(ctx context.Context, w *domain.TypeOfWork) error
	SaveWorkTypeFn       func(ctx context.Context, w *domain.TypeOfWork) error
	DeleteWorkTypeFn     func(ctx context.Context, w *domain.TypeOfWork) error
	WorkTypeSlugExistsFn func(ctx context.Context, slug string, excludeID uint64) (bool, error)

	ListCompletionStatusesFn     func(ctx context.Context, f domain.ListFilter) ([]domain.CompletionStatus, int64, error)
	GetCompletionStatusByIDFn    func(ctx context.Context, id uint64) (*domain.CompletionStatus, error)
	GetCompletionStatusBySlugFn  func(ctx context.Context, slug string) (*domain.CompletionStatus, error)
	CreateCompletionStatusFn     func(ctx context.Context, s *domain.CompletionStatus) error
	SaveCompletionStatusFn       func(ctx context.Context, s *domain.CompletionStatus) error
	DeleteCompletionStatusFn     func(ctx context.Context, s *domain.CompletionStatus) error
	CompletionStatusSlugExistsFn func(ctx context.Context, slug string, excludeID uint64) (bool, error)

	ListDeviceCategoriesFn     func(ctx context.Context, f domain.ListFilter) ([]domain.MedicalDeviceCategory, int64, error)
	GetDeviceCategoryByIDFn    func(ctx context.Context, id uint64) (*domain.MedicalDeviceCategory, error)
	GetDeviceCategoryBySlugFn  func(ctx context.Context, slug string) (*domain.MedicalDeviceCategory, error)
	CreateDeviceCategoryFn     func(ctx context.Context, c *domain.MedicalDeviceCategory) error
	SaveDeviceCategoryFn       func(ctx context.Context, c *domain.MedicalDeviceCategory) error
	DeleteDeviceCategoryFn     func(ctx context.Context, c *domain.MedicalDeviceCategory) error
	DeviceCategorySlugExistsFn func(ctx context.Context, slug string, excludeID uint64) (bool, error)

	ListFacilityTypesFn      func(ctx context.Context, f domain.ListFilter) ([]domain.TypeOfHealthFacility, int64, error)
	GetFacilityTypeByIDFn    func(ctx context.Context, id uint64) (*domain.TypeOfHealthFacility, error)
	GetFacilityTypeBySlugFn  func(ctx context.Context, slug string) (*domain.TypeOfHealthFacility, error)
	CreateFacilityTypeFn     func(ctx context.Context, t *domain.TypeOfHealthFacility) error
	SaveFacilityTypeFn       func(ctx context.Context, t *domain.TypeOfHealthFacility) error
	DeleteFacilityTypeFn     func(ctx context.Context, t *domain.TypeOfHealthFacility) error
	FacilityTypeSlugExistsFn func(ctx context.Context, slug string, excludeID uint64) (bool, error)
}

func (m *Repo) ListWorkTypes(ctx context.Context, f domain.ListFilter) ([]domain.TypeOfWork, int64, error) {
	if m.ListWorkTypesFn != nil {
		return m.ListWorkTypesFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) GetWorkTypeByID(ctx context.Context, id uint64) (*domain.TypeOfWork, error) {
	if m.GetWorkTypeByIDFn != nil {
		return m.GetWorkTypeByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetWorkTypeBySlug(ctx context.Context, slug string) (*domain.TypeOfWork, error) {
	if m.GetWorkTypeBySlugFn != nil {
		return m.GetWorkTypeBySlugFn(ctx, slug)
	}
	return nil, errUnimplemented
}

func (m *Repo) CreateWorkType(ctx context.Context, w *domain.TypeOfWork) error {
	if m.CreateWorkTypeFn != nil {
		return m.CreateWorkTypeFn(ctx, w)
	}
	return nil
}

func (m *Repo) SaveWorkType(ctx context.Context, w *domain.TypeOfWork) error {
	if m.SaveWorkTypeFn != nil {
		return m.SaveWorkTypeFn(ctx, w)
	}
	return nil
}

func (m *Repo) DeleteWorkType(ctx context.Context, w *domain.TypeOfWork) error {
	if m.DeleteWorkTypeFn != nil {
		return m.DeleteWorkTypeFn(ctx, w)
	}
	return nil
}

func (m *Repo) WorkTypeSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	if m.WorkTypeSlugExistsFn != nil {
		return m.WorkTypeSlugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *Repo) ListCompletionStatuses(ctx context.Context, f domain.ListFilter) ([]domain.CompletionStatus, int64, error) {
	if m.ListCompletionStatusesFn != nil {
		return m.ListCompletionStatusesFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) GetCompletionStatusByID(ctx context.Context, id uint64) (*domain.CompletionStatus, error) {
	if m.GetCompletionStatusByIDFn != nil {
		return m.GetCompletionStatusByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetCompletionStatusBySlug(ctx context.Context, slug string) (*domain.CompletionStatus, error) {
	if m.GetCompletionStatusBySlugFn != nil {
		return m.GetCompletionStatusBySlugFn(ctx, slug)
	}
	return nil, errUnimplemented
}

func (m *Repo) CreateCompletionStatus(ctx context.Context, s *domain.CompletionStatus) error {
	if m.CreateCompletionStatusFn != nil {
		return m.CreateCompletionStatusFn(ctx, s)
	}
	return nil
}

func (m *Repo) SaveCompletionStatus(ctx context.Context, s *domain.CompletionStatus) error {
	if m.SaveCompletionStatusFn != nil {
		return m.SaveCompletionStatusFn(ctx, s)
	}
	return nil
}

func (m *Repo) DeleteCompletionStatus(ctx context.Context, s *domain.CompletionStatus) error {
	if m.DeleteCompletionStatusFn != nil {
		return m.DeleteCompletionStatusFn(ctx, s)
	}
	return nil
}

func (m *Repo) CompletionStatusSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	if m.CompletionStatusSlugExistsFn != nil {
		return m.CompletionStatusSlugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *Repo) ListDeviceCategories(ctx context.Context, f domain.ListFilter) ([]domain.MedicalDeviceCategory, int64, error) {
	if m.ListDeviceCategoriesFn != nil {
		return m.ListDeviceCategoriesFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) GetDeviceCategoryByID(ctx context.Context, id uint64) (*domain.MedicalDeviceCategory, error) {
	if m.GetDeviceCategoryByIDFn != nil {
		return m.GetDeviceCategoryByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetDeviceCategoryBySlug(ctx context.Context, slug string) (*domain.MedicalDeviceCategory, error) {
	if m.GetDeviceCategoryBySlugFn != nil {
		return m.GetDeviceCategoryBySlugFn(ctx, slug)
	}
	return nil, errUnimplemented
}

func (m *Repo) CreateDeviceCategory(ctx context.Context, c *domain.MedicalDeviceCategory) error {
	if m.CreateDeviceCategoryFn != nil {
		return m.CreateDeviceCategoryFn(ctx, c)
	}
	return nil
}

func (m *Repo) SaveDeviceCategory(ctx context.Context, c *domain.MedicalDeviceCategory) error {
	if m.SaveDeviceCategoryFn != nil {
		return m.SaveDeviceCategoryFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteDeviceCategory(ctx context.Context, c *domain.MedicalDeviceCategory) error {
	if m.DeleteDeviceCategoryFn != nil {
		return m.DeleteDeviceCategoryFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeviceCategorySlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	if m.DeviceCategorySlugExistsFn != nil {
		return m.DeviceCategorySlugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *Repo) ListFacilityTypes(ctx context.Context, f domain.ListFilter) ([]domain.TypeOfHealthFacility, int64, error) {
	if m.ListFacilityTypesFn != nil {
		return m.ListFacilityTypesFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) GetFacilityTypeByID(ctx context.Context, id uint64) (*domain.TypeOfHealthFacility, error) {
	if m.GetFacilityTypeByIDFn != nil {
		return m.GetFacilityTypeByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetFacilityTypeBySlug(ctx context.Context, slug string) (*domain.TypeOfHealthFacility, error) {
	if m.GetFacilityTypeBySlugFn != nil {
		return m.GetFacilityTypeBySlugFn(ctx, slug)
	}
	return nil, errUnimplemented
}

func (m *Repo) CreateFacilityType(ctx context.Context, t *domain.TypeOfHealthFacility) error {
	if m.CreateFacilityTypeFn != nil {
		return m.CreateFacilityTypeFn(ctx, t)
	}
	return nil
}

func (m *Repo) SaveFacilityType(ctx context.Context, t *domain.TypeOfHealthFacility) error {
	if m.SaveFacilityTypeFn != nil {
		return m.SaveFacilityTypeFn(ctx, t)
	}
	return nil
}

func (m *Repo) DeleteFacilityType(ctx context.Context, t *domain.TypeOfHealthFacility) error {
	if m.DeleteFacilityTypeFn != nil {
		return m.DeleteFacilityTypeFn(ctx, t)
	}
	return nil
}

func (m *Repo) FacilityTypeSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	if m.FacilityTypeSlugExistsFn != nil {
		return m.FacilityTypeSlugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}
