package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	reportDomain "fieldservice-backend/internal/domain/report"
)

type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

func (r *ReportRepository) Create(ctx context.Context, rep *reportDomain.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint64) (*reportDomain.Report, error) {
	var out reportDomain.Report
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ReportRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*reportDomain.Report, error) {
	q := r.db.WithContext(ctx)
	// sqlite has no SELECT ... FOR UPDATE; its writes serialize anyway
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out reportDomain.Report
	res := q.First(&out, id)
	return &out, res.Error
}

func (r *ReportRepository) GetWithRelations(ctx context.Context, id uint64) (*reportDomain.Report, error) {
	var out reportDomain.Report
	res := r.db.WithContext(ctx).
		Preload("User").
		Preload("Employee").
		Preload("HealthFacility").
		Preload("DeviceItems.MedicalDevice").
		Preload("DeviceItems.TypeOfWork").
		Preload("Detail.CompletionStatus").
		Preload("Location").
		Preload("Parameters").
		Preload("PartsUsed.Images").
		First(&out, id)
	return &out, res.Error
}

func (r *ReportRepository) List(ctx context.Context, f reportDomain.ListFilter) ([]reportDomain.Report, int64, error) {
	q := r.db.WithContext(ctx).Model(&reportDomain.Report{})
	if f.Search != "" {
		q = q.Where("report_number LIKE ?", "%"+f.Search+"%")
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []reportDomain.Report
	res := q.Preload("Employee").Preload("HealthFacility").Preload("DeviceItems").
		Order("created_at DESC").
		Scopes(paginate(f.Page, f.PerPage)).
		Find(&out)
	return out, total, res.Error
}

func (r *ReportRepository) ListByEmployee(ctx context.Context, employeeID uint64) ([]reportDomain.Report, error) {
	var out []reportDomain.Report
	res := r.db.WithContext(ctx).
		Preload("Detail").Preload("HealthFacility").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *ReportRepository) Save(ctx context.Context, rep *reportDomain.Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *ReportRepository) Delete(ctx context.Context, rep *reportDomain.Report) error {
	// children are cascade-scoped to the report; drive the deletes here so
	// sqlite test databases without FK cascades behave the same as MySQL
	db := r.db.WithContext(ctx)
	var partIDs []uint64
	if err := db.Model(&reportDomain.PartUsedForRepair{}).
		Where("report_id = ?", rep.ID).Pluck("id", &partIDs).Error; err != nil {
		return err
	}
	if len(partIDs) > 0 {
		if err := db.Where("part_used_for_repair_id IN ?", partIDs).
			Delete(&reportDomain.PartUsedForImage{}).Error; err != nil {
			return err
		}
	}
	for _, child := range []any{
		&reportDomain.PartUsedForRepair{},
		&reportDomain.Parameter{},
		&reportDomain.ReportDetail{},
		&reportDomain.ReportDeviceItem{},
		&reportDomain.Location{},
	} {
		if err := db.Where("report_id = ?", rep.ID).Delete(child).Error; err != nil {
			return err
		}
	}
	return db.Delete(rep).Error
}

func (r *ReportRepository) LastNumberForPrefix(ctx context.Context, prefix string) (string, error) {
	var out reportDomain.Report
	res := r.db.WithContext(ctx).
		Select("report_number").
		Where("report_number LIKE ?", prefix+"%").
		Order("report_number DESC").
		First(&out)
	if res.Error != nil {
		return "", res.Error
	}
	return out.ReportNumber, nil
}

func (r *ReportRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&reportDomain.Report{}).
		Where("report_number = ?", number).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ReportRepository) CreateLocation(ctx context.Context, l *reportDomain.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ReportRepository) GetLocationByReportID(ctx context.Context, reportID uint64) (*reportDomain.Location, error) {
	var out reportDomain.Location
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).First(&out)
	return &out, res.Error
}

func (r *ReportRepository) SaveLocation(ctx context.Context, l *reportDomain.Location) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *ReportRepository) CreateDeviceItem(ctx context.Context, it *reportDomain.ReportDeviceItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ReportRepository) DeleteDeviceItems(ctx context.Context, reportID uint64) error {
	return r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Delete(&reportDomain.ReportDeviceItem{}).Error
}

func (r *ReportRepository) CreateDetail(ctx context.Context, d *reportDomain.ReportDetail) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ReportRepository) GetDetailByReportID(ctx context.Context, reportID uint64) (*reportDomain.ReportDetail, error) {
	var out reportDomain.ReportDetail
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).First(&out)
	return &out, res.Error
}

func (r *ReportRepository) SaveDetail(ctx context.Context, d *reportDomain.ReportDetail) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *ReportRepository) CreateParameter(ctx context.Context, p *reportDomain.Parameter) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ReportRepository) CreatePart(ctx context.Context, p *reportDomain.PartUsedForRepair) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ReportRepository) CreatePartImage(ctx context.Context, img *reportDomain.PartUsedForImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}
