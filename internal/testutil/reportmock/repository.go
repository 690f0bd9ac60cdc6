package reportmock

import (
	"context"
	"errors"

	domain "fieldservice-backend/internal/domain/report"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("reportmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; getters without a Fn fail loudly,
// writers without one succeed silently.
type Repo struct {
	CreateFn              func(ctx context.Context, r *domain.Report) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Report, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Report, error)
	GetWithRelationsFn    func(ctx context.Context, id uint64) (*domain.Report, error)
	ListFn                func(ctx context.Context, f domain.ListFilter) ([]domain.Report, int64, error)
	ListByEmployeeFn      func(ctx context.Context, employeeID uint64) ([]domain.Report, error)
	SaveFn                func(ctx context.Context, r *domain.Report) error
	DeleteFn              func(ctx context.Context, r *domain.Report) error
	LastNumberForPrefixFn func(ctx context.Context, prefix string) (string, error)
	NumberExistsFn        func(ctx context.Context, number string) (bool, error)

	CreateLocationFn        func(ctx context.Context, l *domain.Location) error
	GetLocationByReportIDFn func(ctx context.Context, reportID uint64) (*domain.Location, error)
	SaveLocationFn          func(ctx context.Context, l *domain.Location) error

	CreateDeviceItemFn  func(ctx context.Context, it *domain.ReportDeviceItem) error
	DeleteDeviceItemsFn func(ctx context.Context, reportID uint64) error

	CreateDetailFn        func(ctx context.Context, d *domain.ReportDetail) error
	GetDetailByReportIDFn func(ctx context.Context, reportID uint64) (*domain.ReportDetail, error)
	SaveDetailFn          func(ctx context.Context, d *domain.ReportDetail) error

	CreateParameterFn func(ctx context.Context, p *domain.Parameter) error
	CreatePartFn      func(ctx context.Context, p *domain.PartUsedForRepair) error
	CreatePartImageFn func(ctx context.Context, img *domain.PartUsedForImage) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Report) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Report, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Report, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetWithRelations(ctx context.Context, id uint64) (*domain.Report, error) {
	if m.GetWithRelationsFn != nil {
		return m.GetWithRelationsFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Report, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) ListByEmployee(ctx context.Context, employeeID uint64) ([]domain.Report, error) {
	if m.ListByEmployeeFn != nil {
		return m.ListByEmployeeFn(ctx, employeeID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, r *domain.Report) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, r *domain.Report) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, r)
	}
	return nil
}

func (m *Repo) LastNumberForPrefix(ctx context.Context, prefix string) (string, error) {
	if m.LastNumberForPrefixFn != nil {
		return m.LastNumberForPrefixFn(ctx, prefix)
	}
	return "", errUnimplemented
}

func (m *Repo) NumberExists(ctx context.Context, number string) (bool, error) {
	if m.NumberExistsFn != nil {
		return m.NumberExistsFn(ctx, number)
	}
	return false, nil
}

func (m *Repo) CreateLocation(ctx context.Context, l *domain.Location) error {
	if m.CreateLocationFn != nil {
		return m.CreateLocationFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetLocationByReportID(ctx context.Context, reportID uint64) (*domain.Location, error) {
	if m.GetLocationByReportIDFn != nil {
		return m.GetLocationByReportIDFn(ctx, reportID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveLocation(ctx context.Context, l *domain.Location) error {
	if m.SaveLocationFn != nil {
		return m.SaveLocationFn(ctx, l)
	}
	return nil
}

func (m *Repo) CreateDeviceItem(ctx context.Context, it *domain.ReportDeviceItem) error {
	if m.CreateDeviceItemFn != nil {
		return m.CreateDeviceItemFn(ctx, it)
	}
	return nil
}

func (m *Repo) DeleteDeviceItems(ctx context.Context, reportID uint64) error {
	if m.DeleteDeviceItemsFn != nil {
		return m.DeleteDeviceItemsFn(ctx, reportID)
	}
	return nil
}

func (m *Repo) CreateDetail(ctx context.Context, d *domain.ReportDetail) error {
	if m.CreateDetailFn != nil {
		return m.CreateDetailFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetDetailByReportID(ctx context.Context, reportID uint64) (*domain.ReportDetail, error) {
	if m.GetDetailByReportIDFn != nil {
		return m.GetDetailByReportIDFn(ctx, reportID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveDetail(ctx context.Context, d *domain.ReportDetail) error {
	if m.SaveDetailFn != nil {
		return m.SaveDetailFn(ctx, d)
	}
	return nil
}

func (m *Repo) CreateParameter(ctx context.Context, p *domain.Parameter) error {
	if m.CreateParameterFn != nil {
		return m.CreateParameterFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreatePart(ctx context.Context, p *domain.PartUsedForRepair) error {
	if m.CreatePartFn != nil {
		return m.CreatePartFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreatePartImage(ctx context.Context, img *domain.PartUsedForImage) error {
	if m.CreatePartImageFn != nil {
		return m.CreatePartImageFn(ctx, img)
	}
	return nil
}
