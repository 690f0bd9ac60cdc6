package mysql

import (
	"context"

	"gorm.io/gorm"

	deviceDomain "fieldservice-backend/internal/domain/device"
	facilityDomain "fieldservice-backend/internal/domain/facility"
)

type FacilityRepository struct{ db *gorm.DB }

func NewFacilityRepository(db *gorm.DB) *FacilityRepository { return &FacilityRepository{db: db} }

func (r *FacilityRepository) Create(ctx context.Context, hf *facilityDomain.HealthFacility) error {
	return r.db.WithContext(ctx).Create(hf).Error
}

func (r *FacilityRepository) GetByID(ctx context.Context, id uint64) (*facilityDomain.HealthFacility, error) {
	var out facilityDomain.HealthFacility
	res := r.db.WithContext(ctx).Preload("Type").Preload("MedicalDevices").First(&out, id)
	return &out, res.Error
}

func (r *FacilityRepository) GetBySlug(ctx context.Context, slug string) (*facilityDomain.HealthFacility, error) {
	var out facilityDomain.HealthFacility
	res := r.db.WithContext(ctx).Preload("Type").Preload("MedicalDevices").
		Where("slug = ?", slug).First(&out)
	return &out, res.Error
}

func (r *FacilityRepository) List(ctx context.Context, f facilityDomain.ListFilter) ([]facilityDomain.HealthFacility, int64, error) {
	q := r.db.WithContext(ctx).Model(&facilityDomain.HealthFacility{})
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if len(f.TypeIDs) > 0 {
		q = q.Where("type_of_health_facility_id IN ?", f.TypeIDs)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []facilityDomain.HealthFacility
	res := q.Preload("Type").Preload("MedicalDevices").
		Order("created_at DESC").
		Scopes(paginate(f.Page, f.PerPage)).
		Find(&out)
	return out, total, res.Error
}

func (r *FacilityRepository) Save(ctx context.Context, hf *facilityDomain.HealthFacility) error {
	return r.db.WithContext(ctx).Save(hf).Error
}

func (r *FacilityRepository) Delete(ctx context.Context, hf *facilityDomain.HealthFacility) error {
	return r.db.WithContext(ctx).Delete(hf).Error
}

func (r *FacilityRepository) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&facilityDomain.HealthFacility{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *FacilityRepository) AttachDevices(ctx context.Context, hf *facilityDomain.HealthFacility, deviceIDs []uint64) error {
	devices := make([]deviceDomain.MedicalDevice, 0, len(deviceIDs))
	for _, id := range deviceIDs {
		devices = append(devices, deviceDomain.MedicalDevice{ID: id})
	}
	return r.db.WithContext(ctx).Model(hf).Association("MedicalDevices").Append(&devices)
}

func (r *FacilityRepository) DetachDevice(ctx context.Context, hf *facilityDomain.HealthFacility, deviceID uint64) error {
	return r.db.WithContext(ctx).Model(hf).
		Association("MedicalDevices").Delete(&deviceDomain.MedicalDevice{ID: deviceID})
}
