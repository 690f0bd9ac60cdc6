package report

import "context"

type ListFilter struct {
	Search  string // matches report_number
	UserID  uint64 // 0 = all users
	Page    int
	PerPage int
}

type Repository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uint64) (*Report, error)
	// GetByIDForUpdate locks the report row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Report, error)
	// GetWithRelations loads the full aggregate: user, employee, facility,
	// device items (+device, +work type), detail (+completion status),
	// location, parameters and parts (+images).
	GetWithRelations(ctx context.Context, id uint64) (*Report, error)
	List(ctx context.Context, f ListFilter) ([]Report, int64, error)
	ListByEmployee(ctx context.Context, employeeID uint64) ([]Report, error)
	Save(ctx context.Context, r *Report) error
	Delete(ctx context.Context, r *Report) error
	// LastNumberForPrefix returns the lexicographically greatest report_number
	// starting with prefix, or gorm.ErrRecordNotFound when none exists.
	LastNumberForPrefix(ctx context.Context, prefix string) (string, error)
	NumberExists(ctx context.Context, number string) (bool, error)

	CreateLocation(ctx context.Context, l *Location) error
	GetLocationByReportID(ctx context.Context, reportID uint64) (*Location, error)
	SaveLocation(ctx context.Context, l *Location) error

	CreateDeviceItem(ctx context.Context, it *ReportDeviceItem) error
	DeleteDeviceItems(ctx context.Context, reportID uint64) error

	CreateDetail(ctx context.Context, d *ReportDetail) error
	GetDetailByReportID(ctx context.Context, reportID uint64) (*ReportDetail, error)
	SaveDetail(ctx context.Context, d *ReportDetail) error

	CreateParameter(ctx context.Context, p *Parameter) error
	CreatePart(ctx context.Context, p *PartUsedForRepair) error
	CreatePartImage(ctx context.Context, img *PartUsedForImage) error
}
