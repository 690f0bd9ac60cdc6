package mysql

import (
	"context"

	"gorm.io/gorm"

	employeeDomain "fieldservice-backend/internal/domain/employee"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint64) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).
		Preload("User").Preload("Region").Preload("Division").Preload("Position").
		First(&out, id)
	return &out, res.Error
}

func (r *EmployeeRepository) List(ctx context.Context, f employeeDomain.ListFilter) ([]employeeDomain.Employee, int64, error) {
	q := r.db.WithContext(ctx).Model(&employeeDomain.Employee{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR employee_number LIKE ? OR nik LIKE ?", like, like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []employeeDomain.Employee
	res := q.Preload("User").Preload("Region").Preload("Division").Preload("Position").
		Order("created_at DESC").
		Scopes(paginate(f.Page, f.PerPage)).
		Find(&out)
	return out, total, res.Error
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Delete(e).Error
}

func (r *EmployeeRepository) NIKExists(ctx context.Context, nik string, excludeID uint64) (bool, error) {
	return r.exists(ctx, "nik = ?", nik, excludeID)
}

func (r *EmployeeRepository) NumberExists(ctx context.Context, number string, excludeID uint64) (bool, error) {
	return r.exists(ctx, "employee_number = ?", number, excludeID)
}

func (r *EmployeeRepository) exists(ctx context.Context, cond, val string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&employeeDomain.Employee{}).Where(cond, val)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *EmployeeRepository) ListRegions(ctx context.Context) ([]employeeDomain.Region, error) {
	var out []employeeDomain.Region
	return out, r.db.WithContext(ctx).Order("name").Find(&out).Error
}

func (r *EmployeeRepository) ListDivisions(ctx context.Context) ([]employeeDomain.Division, error) {
	var out []employeeDomain.Division
	return out, r.db.WithContext(ctx).Order("name").Find(&out).Error
}

func (r *EmployeeRepository) ListPositions(ctx context.Context) ([]employeeDomain.Position, error) {
	var out []employeeDomain.Position
	return out, r.db.WithContext(ctx).Order("name").Find(&out).Error
}

func (r *EmployeeRepository) GetRegionByID(ctx context.Context, id uint64) (*employeeDomain.Region, error) {
	var out employeeDomain.Region
	return &out, r.db.WithContext(ctx).First(&out, id).Error
}

func (r *EmployeeRepository) GetDivisionByID(ctx context.Context, id uint64) (*employeeDomain.Division, error) {
	var out employeeDomain.Division
	return &out, r.db.WithContext(ctx).First(&out, id).Error
}

func (r *EmployeeRepository) GetPositionByID(ctx context.Context, id uint64) (*employeeDomain.Position, error) {
	var out employeeDomain.Position
	return &out, r.db.WithContext(ctx).First(&out, id).Error
}
