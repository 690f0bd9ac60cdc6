package mysql

import (
	"context"

	"gorm.io/gorm"

	reportDomain "fieldservice-backend/internal/domain/report"
	"fieldservice-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:      &UserRepository{db: tx},
		Employees:  &EmployeeRepository{db: tx},
		Facilities: &FacilityRepository{db: tx},
		Devices:    &DeviceRepository{db: tx},
		Catalog:    &CatalogRepository{db: tx},
		Reports:    &ReportRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinReportTx(ctx context.Context, reportID uint64, fn func(r uow.Repos, rep *reportDomain.Report) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the report row up-front to prevent races
		rep, err := r.Reports.GetByIDForUpdate(ctx, reportID)
		if err != nil {
			return err
		}
		return fn(r, rep)
	})
}
