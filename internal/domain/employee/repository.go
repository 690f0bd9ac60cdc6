package employee

import "context"

type ListFilter struct {
	Search  string // matches name, employee_number or nik
	Page    int
	PerPage int
}

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id uint64) (*Employee, error)
	List(ctx context.Context, f ListFilter) ([]Employee, int64, error)
	Save(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, e *Employee) error
	NIKExists(ctx context.Context, nik string, excludeID uint64) (bool, error)
	NumberExists(ctx context.Context, number string, excludeID uint64) (bool, error)

	ListRegions(ctx context.Context) ([]Region, error)
	ListDivisions(ctx context.Context) ([]Division, error)
	ListPositions(ctx context.Context) ([]Position, error)
	GetRegionByID(ctx context.Context, id uint64) (*Region, error)
	GetDivisionByID(ctx context.Context, id uint64) (*Division, error)
	GetPositionByID(ctx context.Context, id uint64) (*Position, error)
}
