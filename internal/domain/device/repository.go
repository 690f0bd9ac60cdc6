package device

import "context"

type ListFilter struct {
	Search  string // matches brand, model or serial number
	Page    int
	PerPage int
}

type Repository interface {
	Create(ctx context.Context, d *MedicalDevice) error
	GetByID(ctx context.Context, id uint64) (*MedicalDevice, error)
	List(ctx context.Context, f ListFilter) ([]MedicalDevice, int64, error)
	Save(ctx context.Context, d *MedicalDevice) error
	Delete(ctx context.Context, d *MedicalDevice) error
	SerialExists(ctx context.Context, serial string, excludeID uint64) (bool, error)
}
