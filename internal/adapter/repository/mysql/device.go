package mysql

import (
	"context"

	"gorm.io/gorm"

	deviceDomain "fieldservice-backend/internal/domain/device"
)

type DeviceRepository struct{ db *gorm.DB }

func NewDeviceRepository(db *gorm.DB) *DeviceRepository { return &DeviceRepository{db: db} }

func (r *DeviceRepository) Create(ctx context.Context, d *deviceDomain.MedicalDevice) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DeviceRepository) GetByID(ctx context.Context, id uint64) (*deviceDomain.MedicalDevice, error) {
	var out deviceDomain.MedicalDevice
	res := r.db.WithContext(ctx).Preload("Category").First(&out, id)
	return &out, res.Error
}

func (r *DeviceRepository) List(ctx context.Context, f deviceDomain.ListFilter) ([]deviceDomain.MedicalDevice, int64, error) {
	q := r.db.WithContext(ctx).Model(&deviceDomain.MedicalDevice{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("brand LIKE ? OR model LIKE ? OR serial_number LIKE ?", like, like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []deviceDomain.MedicalDevice
	res := q.Preload("Category").
		Order("created_at DESC").
		Scopes(paginate(f.Page, f.PerPage)).
		Find(&out)
	return out, total, res.Error
}

func (r *DeviceRepository) Save(ctx context.Context, d *deviceDomain.MedicalDevice) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DeviceRepository) Delete(ctx context.Context, d *deviceDomain.MedicalDevice) error {
	return r.db.WithContext(ctx).Delete(d).Error
}

func (r *DeviceRepository) SerialExists(ctx context.Context, serial string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&deviceDomain.MedicalDevice{}).Where("serial_number = ?", serial)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
