package facilitymock

import (
	"context"
	"errors"

	domain "fieldservice-backend/internal/domain/facility"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("facilitymock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, hf *domain.HealthFacility) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.HealthFacility, error)
	GetBySlugFn     func(ctx context.Context, slug string) (*domain.HealthFacility, error)
	ListFn          func(ctx context.Context, f domain.ListFilter) ([]domain.HealthFacility, int64, error)
	SaveFn          func(ctx context.Context, hf *domain.HealthFacility) error
	DeleteFn        func(ctx context.Context, hf *domain.HealthFacility) error
	SlugExistsFn    func(ctx context.Context, slug string, excludeID uint64) (bool, error)
	AttachDevicesFn func(ctx context.Context, hf *domain.HealthFacility, deviceIDs []uint64) error
	DetachDeviceFn  func(ctx context.Context, hf *domain.HealthFacility, deviceID uint64) error
}

func (m *Repo) Create(ctx context.Context, hf *domain.HealthFacility) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, hf)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.HealthFacility, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetBySlug(ctx context.Context, slug string) (*domain.HealthFacility, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.HealthFacility, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, hf *domain.HealthFacility) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, hf)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, hf *domain.HealthFacility) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, hf)
	}
	return nil
}

func (m *Repo) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	if m.SlugExistsFn != nil {
		return m.SlugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *Repo) AttachDevices(ctx context.Context, hf *domain.HealthFacility, deviceIDs []uint64) error {
	if m.AttachDevicesFn != nil {
		return m.AttachDevicesFn(ctx, hf, deviceIDs)
	}
	return nil
}

func (m *Repo) DetachDevice(ctx context.Context, hf *domain.HealthFacility, deviceID uint64) error {
	if m.DetachDeviceFn != nil {
		return m.DetachDeviceFn(ctx, hf, deviceID)
	}
	return nil
}
