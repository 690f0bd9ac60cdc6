package uowmock

import (
	"context"
	"errors"

	"fieldservice-backend/internal/domain/report"
	"fieldservice-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinReportTxFn func(ctx context.Context, reportID uint64, fn func(r uow.Repos, rep *report.Report) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW whose transactions just run the closure against
// the given repos, with WithinReportTx resolving the report through them.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinReportTxFn: func(ctx context.Context, reportID uint64, fn func(r uow.Repos, rep *report.Report) error) error {
			rep, err := repos.Reports.GetByIDForUpdate(ctx, reportID)
			if err != nil {
				return err
			}
			return fn(repos, rep)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinReportTx(ctx context.Context, reportID uint64, fn func(r uow.Repos, rep *report.Report) error) error {
	if m.WithinReportTxFn != nil {
		return m.WithinReportTxFn(ctx, reportID, fn)
	}
	return errUnimplemented
}
