package facility

import "context"

type ListFilter struct {
	Search  string   // matches facility name
	TypeIDs []uint64 // filter by facility type
	Page    int
	PerPage int
}

type Repository interface {
	Create(ctx context.Context, hf *HealthFacility) error
	GetByID(ctx context.Context, id uint64) (*HealthFacility, error)
	GetBySlug(ctx context.Context, slug string) (*HealthFacility, error)
	List(ctx context.Context, f ListFilter) ([]HealthFacility, int64, error)
	Save(ctx context.Context, hf *HealthFacility) error
	Delete(ctx context.Context, hf *HealthFacility) error
	SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)
	AttachDevices(ctx context.Context, hf *HealthFacility, deviceIDs []uint64) error
	DetachDevice(ctx context.Context, hf *HealthFacility, deviceID uint64) error
}
