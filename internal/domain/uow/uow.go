// Package uow defines the explicit unit of work passed into each write
// workflow. Every multi-entity mutation runs inside WithinTx (or
// WithinReportTx) so a failure anywhere rolls the whole thing back.
package uow

import (
	"context"

	"fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/internal/domain/device"
	"fieldservice-backend/internal/domain/employee"
	"fieldservice-backend/internal/domain/facility"
	"fieldservice-backend/internal/domain/report"
	"fieldservice-backend/internal/domain/user"
)

// Repos bundles transaction-bound repositories.
type Repos struct {
	Users      user.Repository
	Employees  employee.Repository
	Facilities facility.Repository
	Devices    device.Repository
	Catalog    catalog.Repository
	Reports    report.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the report row first, then pass it in
	WithinReportTx(ctx context.Context, reportID uint64, fn func(r Repos, rep *report.Report) error) error
}
