package employeemock

import (
	"context"
	"errors"

	domain "fieldservice-backend/internal/domain/employee"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("employeemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, e *domain.Employee) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Employee, error)
	ListFn          func(ctx context.Context, f domain.ListFilter) ([]domain.Employee, int64, error)
	SaveFn          func(ctx context.Context, e *domain.Employee) error
	DeleteFn        func(ctx context.Context, e *domain.Employee) error
	NIKExistsFn     func(ctx context.Context, nik string, excludeID uint64) (bool, error)
	NumberExistsFn  func(ctx context.Context, number string, excludeID uint64) (bool, error)
	ListRegionsFn   func(ctx context.Context) ([]domain.Region, error)
	ListDivisionsFn func(ctx context.Context) ([]domain.Division, error)
	ListPositionsFn func(ctx context.Context) ([]domain.Position, error)
	GetRegionByIDFn   func(ctx context.Context, id uint64) (*domain.Region, error)
	GetDivisionByIDFn func(ctx context.Context, id uint64) (*domain.Division, error)
	GetPositionByIDFn func(ctx context.Context, id uint64) (*domain.Position, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Employee, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, e *domain.Employee) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, e *domain.Employee) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, e)
	}
	return nil
}

func (m *Repo) NIKExists(ctx context.Context, nik string, excludeID uint64) (bool, error) {
	if m.NIKExistsFn != nil {
		return m.NIKExistsFn(ctx, nik, excludeID)
	}
	return false, nil
}

func (m *Repo) NumberExists(ctx context.Context, number string, excludeID uint64) (bool, error) {
	if m.NumberExistsFn != nil {
		return m.NumberExistsFn(ctx, number, excludeID)
	}
	return false, nil
}

func (m *Repo) ListRegions(ctx context.Context) ([]domain.Region, error) {
	if m.ListRegionsFn != nil {
		return m.ListRegionsFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListDivisions(ctx context.Context) ([]domain.Division, error) {
	if m.ListDivisionsFn != nil {
		return m.ListDivisionsFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPositions(ctx context.Context) ([]domain.Position, error) {
	if m.ListPositionsFn != nil {
		return m.ListPositionsFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetRegionByID(ctx context.Context, id uint64) (*domain.Region, error) {
	if m.GetRegionByIDFn != nil {
		return m.GetRegionByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetDivisionByID(ctx context.Context, id uint64) (*domain.Division, error) {
	if m.GetDivisionByIDFn != nil {
		return m.GetDivisionByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetPositionByID(ctx context.Context, id uint64) (*domain.Position, error) {
	if m.GetPositionByIDFn != nil {
		return m.GetPositionByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
