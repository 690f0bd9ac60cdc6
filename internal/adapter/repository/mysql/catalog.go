package mysql

import (
	"context"

	"gorm.io/gorm"

	catalogDomain "fieldservice-backend/internal/domain/catalog"
)

// CatalogRepository serves the four slug-addressed reference tables. The
// per-entity methods share generic helpers since the tables are shaped
// identically.
type CatalogRepository struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{db: db} }

func listRef[T any](ctx context.Context, db *gorm.DB, f catalogDomain.ListFilter) ([]T, int64, error) {
	var model T
	q := db.WithContext(ctx).Model(&model)
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []T
	res := q.Order("created_at DESC").Scopes(paginate(f.Page, f.PerPage)).Find(&out)
	return out, total, res.Error
}

func getRefByID[T any](ctx context.Context, db *gorm.DB, id uint64) (*T, error) {
	var out T
	res := db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func getRefBySlug[T any](ctx context.Context, db *gorm.DB, slug string) (*T, error) {
	var out T
	res := db.WithContext(ctx).Where("slug = ?", slug).First(&out)
	return &out, res.Error
}

func refSlugExists[T any](ctx context.Context, db *gorm.DB, slug string, excludeID uint64) (bool, error) {
	var model T
	var n int64
	q := db.WithContext(ctx).Model(&model).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- type of work ---

func (r *CatalogRepository) ListWorkTypes(ctx context.Context, f catalogDomain.ListFilter) ([]catalogDomain.TypeOfWork, int64, error) {
	return listRef[catalogDomain.TypeOfWork](ctx, r.db, f)
}

func (r *CatalogRepository) GetWorkTypeByID(ctx context.Context, id uint64) (*catalogDomain.TypeOfWork, error) {
	return getRefByID[catalogDomain.TypeOfWork](ctx, r.db, id)
}

func (r *CatalogRepository) GetWorkTypeBySlug(ctx context.Context, slug string) (*catalogDomain.TypeOfWork, error) {
	return getRefBySlug[catalogDomain.TypeOfWork](ctx, r.db, slug)
}

func (r *CatalogRepository) CreateWorkType(ctx context.Context, w *catalogDomain.TypeOfWork) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *CatalogRepository) SaveWorkType(ctx context.Context, w *catalogDomain.TypeOfWork) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *CatalogRepository) DeleteWorkType(ctx context.Context, w *catalogDomain.TypeOfWork) error {
	return r.db.WithContext(ctx).Delete(w).Error
}

func (r *CatalogRepository) WorkTypeSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	return refSlugExists[catalogDomain.TypeOfWork](ctx, r.db, slug, excludeID)
}

// --- completion status ---

func (r *CatalogRepository) ListCompletionStatuses(ctx context.Context, f catalogDomain.ListFilter) ([]catalogDomain.CompletionStatus, int64, error) {
	return listRef[catalogDomain.CompletionStatus](ctx, r.db, f)
}

func (r *CatalogRepository) GetCompletionStatusByID(ctx context.Context, id uint64) (*catalogDomain.CompletionStatus, error) {
	return getRefByID[catalogDomain.CompletionStatus](ctx, r.db, id)
}

func (r *CatalogRepository) GetCompletionStatusBySlug(ctx context.Context, slug string) (*catalogDomain.CompletionStatus, error) {
	return getRefBySlug[catalogDomain.CompletionStatus](ctx, r.db, slug)
}

func (r *CatalogRepository) CreateCompletionStatus(ctx context.Context, s *catalogDomain.CompletionStatus) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogRepository) SaveCompletionStatus(ctx context.Context, s *catalogDomain.CompletionStatus) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *CatalogRepository) DeleteCompletionStatus(ctx context.Context, s *catalogDomain.CompletionStatus) error {
	return r.db.WithContext(ctx).Delete(s).Error
}

func (r *CatalogRepository) CompletionStatusSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	return refSlugExists[catalogDomain.CompletionStatus](ctx, r.db, slug, excludeID)
}

// --- medical device category ---

func (r *CatalogRepository) ListDeviceCategories(ctx context.Context, f catalogDomain.ListFilter) ([]catalogDomain.MedicalDeviceCategory, int64, error) {
	return listRef[catalogDomain.MedicalDeviceCategory](ctx, r.db, f)
}

func (r *CatalogRepository) GetDeviceCategoryByID(ctx context.Context, id uint64) (*catalogDomain.MedicalDeviceCategory, error) {
	return getRefByID[catalogDomain.MedicalDeviceCategory](ctx, r.db, id)
}

func (r *CatalogRepository) GetDeviceCategoryBySlug(ctx context.Context, slug string) (*catalogDomain.MedicalDeviceCategory, error) {
	return getRefBySlug[catalogDomain.MedicalDeviceCategory](ctx, r.db, slug)
}

func (r *CatalogRepository) CreateDeviceCategory(ctx context.Context, c *catalogDomain.MedicalDeviceCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CatalogRepository) SaveDeviceCategory(ctx context.Context, c *catalogDomain.MedicalDeviceCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CatalogRepository) DeleteDeviceCategory(ctx context.Context, c *catalogDomain.MedicalDeviceCategory) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *CatalogRepository) DeviceCategorySlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	return refSlugExists[catalogDomain.MedicalDeviceCategory](ctx, r.db, slug, excludeID)
}

// --- type of health facility ---

func (r *CatalogRepository) ListFacilityTypes(ctx context.Context, f catalogDomain.ListFilter) ([]catalogDomain.TypeOfHealthFacility, int64, error) {
	return listRef[catalogDomain.TypeOfHealthFacility](ctx, r.db, f)
}

func (r *CatalogRepository) GetFacilityTypeByID(ctx context.Context, id uint64) (*catalogDomain.TypeOfHealthFacility, error) {
	return getRefByID[catalogDomain.TypeOfHealthFacility](ctx, r.db, id)
}

func (r *CatalogRepository) GetFacilityTypeBySlug(ctx context.Context, slug string) (*catalogDomain.TypeOfHealthFacility, error) {
	return getRefBySlug[catalogDomain.TypeOfHealthFacility](ctx, r.db, slug)
}

func (r *CatalogRepository) CreateFacilityType(ctx context.Context, t *catalogDomain.TypeOfHealthFacility) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *CatalogRepository) SaveFacilityType(ctx context.Context, t *catalogDomain.TypeOfHealthFacility) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *CatalogRepository) DeleteFacilityType(ctx context.Context, t *catalogDomain.TypeOfHealthFacility) error {
	return r.db.WithContext(ctx).Delete(t).Error
}

func (r *CatalogRepository) FacilityTypeSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	return refSlugExists[catalogDomain.TypeOfHealthFacility](ctx, r.db, slug, excludeID)
}
