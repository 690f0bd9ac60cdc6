package catalog

import "context"

// ListFilter applies to every catalog listing: optional name search plus
// pagination. PerPage <= 0 means the handler default.
type ListFilter struct {
	Search  string
	Page    int
	PerPage int
}

type Repository interface {
	ListWorkTypes(ctx context.Context, f ListFilter) ([]TypeOfWork, int64, error)
	GetWorkTypeByID(ctx context.Context, id uint64) (*TypeOfWork, error)
	GetWorkTypeBySlug(ctx context.Context, slug string) (*TypeOfWork, error)
	CreateWorkType(ctx context.Context, w *TypeOfWork) error
	SaveWorkType(ctx context.Context, w *TypeOfWork) error
	DeleteWorkType(ctx context.Context, w *TypeOfWork) error
	WorkTypeSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)

	ListCompletionStatuses(ctx context.Context, f ListFilter) ([]CompletionStatus, int64, error)
	GetCompletionStatusByID(ctx context.Context, id uint64) (*CompletionStatus, error)
	GetCompletionStatusBySlug(ctx context.Context, slug string) (*CompletionStatus, error)
	CreateCompletionStatus(ctx context.Context, s *CompletionStatus) error
	SaveCompletionStatus(ctx context.Context, s *CompletionStatus) error
	DeleteCompletionStatus(ctx context.Context, s *CompletionStatus) error
	CompletionStatusSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)

	ListDeviceCategories(ctx context.Context, f ListFilter) ([]MedicalDeviceCategory, int64, error)
	GetDeviceCategoryByID(ctx context.Context, id uint64) (*MedicalDeviceCategory, error)
	GetDeviceCategoryBySlug(ctx context.Context, slug string) (*MedicalDeviceCategory, error)
	CreateDeviceCategory(ctx context.Context, c *MedicalDeviceCategory) error
	SaveDeviceCategory(ctx context.Context, c *MedicalDeviceCategory) error
	DeleteDeviceCategory(ctx context.Context, c *MedicalDeviceCategory) error
	DeviceCategorySlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)

	ListFacilityTypes(ctx context.Context, f ListFilter) ([]TypeOfHealthFacility, int64, error)
	GetFacilityTypeByID(ctx context.Context, id uint64) (*TypeOfHealthFacility, error)
	GetFacilityTypeBySlug(ctx context.Context, slug string) (*TypeOfHealthFacility, error)
	CreateFacilityType(ctx context.Context, t *TypeOfHealthFacility) error
	SaveFacilityType(ctx context.Context, t *TypeOfHealthFacility) error
	DeleteFacilityType(ctx context.Context, t *TypeOfHealthFacility) error
	FacilityTypeSlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)
}
