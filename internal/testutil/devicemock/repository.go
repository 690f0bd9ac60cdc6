package devicemock

import (
	"context"
	"errors"

	domain "fieldservice-backend/internal/domain/device"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("devicemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, d *domain.MedicalDevice) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.MedicalDevice, error)
	ListFn         func(ctx context.Context, f domain.ListFilter) ([]domain.MedicalDevice, int64, error)
	SaveFn         func(ctx context.Context, d *domain.MedicalDevice) error
	DeleteFn       func(ctx context.Context, d *domain.MedicalDevice) error
	SerialExistsFn func(ctx context.Context, serial string, excludeID uint64) (bool, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.MedicalDevice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.MedicalDevice, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.MedicalDevice, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, d *domain.MedicalDevice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, d *domain.MedicalDevice) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, d)
	}
	return nil
}

func (m *Repo) SerialExists(ctx context.Context, serial string, excludeID uint64) (bool, error) {
	if m.SerialExistsFn != nil {
		return m.SerialExistsFn(ctx, serial, excludeID)
	}
	return false, nil
}
