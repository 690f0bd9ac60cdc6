package report

import (
	"errors"
	"time"

	"fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/internal/domain/device"
	"fieldservice-backend/internal/domain/employee"
	"fieldservice-backend/internal/domain/facility"
	"fieldservice-backend/internal/domain/user"
)

var (
	ErrNotFound         = errors.New("report not found")
	ErrNumberTaken      = errors.New("report number already in use")
	ErrAlreadyCompleted = errors.New("report has already been completed")
	ErrDetailExists     = errors.New("report detail already exists for this report")
	ErrDetailNotFound   = errors.New("report detail not found")
	ErrLocationMissing  = errors.New("report has no location record")
)

type Status string

const (
	StatusProgress  Status = "Progress"
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
)

type Report struct {
	ID               uint64     `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID       uint64     `gorm:"not null;index" json:"employee_id"`
	HealthFacilityID uint64     `gorm:"not null;index" json:"health_facility_id"`
	UserID           uint64     `gorm:"not null;index" json:"user_id"`
	ReportNumber     string     `gorm:"size:32;not null;uniqueIndex:ux_reports_report_number" json:"report_number"`
	Problem          string     `gorm:"type:text" json:"problem"`
	ErrorCode        string     `gorm:"type:text" json:"error_code"`
	JobAction        string     `gorm:"type:text" json:"job_action"`
	Status           Status     `gorm:"column:is_status;size:20;default:'Progress'" json:"status"`
	CompletedAt      *time.Time `json:"completed_at"`
	TotalTime        *string    `gorm:"size:8" json:"total_time"` // elapsed HH:MM:SS, set at completion
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User           *user.User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Employee       *employee.Employee       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	HealthFacility *facility.HealthFacility `gorm:"foreignKey:HealthFacilityID" json:"health_facility,omitempty"`
	DeviceItems    []ReportDeviceItem       `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"device_items,omitempty"`
	Detail         *ReportDetail            `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"detail,omitempty"`
	Location       *Location                `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Parameters     []Parameter              `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"parameters,omitempty"`
	PartsUsed      []PartUsedForRepair      `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"parts_used,omitempty"`
}

func (Report) TableName() string { return "reports" }

// Location is one-to-one with Report: created at submission, overwritten at
// completion.
type Location struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	ReportID  uint64    `gorm:"not null;uniqueIndex:ux_locations_report_id" json:"report_id"`
	Latitude  string    `gorm:"size:50;not null" json:"latitude"`
	Longitude string    `gorm:"size:50;not null" json:"longitude"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Location) TableName() string { return "locations" }

// ReportDeviceItem is one row per (report, device, work type) triple.
type ReportDeviceItem struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"id"`
	ReportID        uint64    `gorm:"not null;index" json:"report_id"`
	MedicalDeviceID uint64    `gorm:"not null" json:"medical_device_id"`
	TypeOfWorkID    uint64    `gorm:"not null" json:"type_of_work_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	MedicalDevice *device.MedicalDevice `gorm:"foreignKey:MedicalDeviceID" json:"medical_device,omitempty"`
	TypeOfWork    *catalog.TypeOfWork   `gorm:"foreignKey:TypeOfWorkID" json:"type_of_work,omitempty"`
}

func (ReportDeviceItem) TableName() string { return "report_device_items" }

// ReportDetail is created exactly once by the completion workflow; its
// presence is the duplicate-completion guard. The signature columns store
// generated file names only, never paths.
type ReportDetail struct {
	ID                 uint64    `gorm:"primaryKey;column:id" json:"id"`
	ReportID           uint64    `gorm:"not null;uniqueIndex:ux_report_details_report_id" json:"report_id"`
	CompletionStatusID uint64    `gorm:"not null" json:"completion_status_id"`
	Note               *string   `gorm:"size:1000" json:"note"`
	Suggestion         *string   `gorm:"size:1000" json:"suggestion"`
	CustomerName       *string   `gorm:"size:255" json:"customer_name"`
	CustomerPhone      *string   `gorm:"size:20" json:"customer_phone"`
	AttendanceEmployee *string   `gorm:"size:255" json:"attendance_employee"`
	AttendanceCustomer *string   `gorm:"size:255" json:"attendance_customer"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	CompletionStatus *catalog.CompletionStatus `gorm:"foreignKey:CompletionStatusID" json:"completion_status,omitempty"`
}

func (ReportDetail) TableName() string { return "report_details" }

type Parameter struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	ReportID    uint64    `gorm:"not null;index" json:"report_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Uraian      *string   `gorm:"size:1000" json:"uraian"`
	Description *string   `gorm:"size:1000" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Parameter) TableName() string { return "parameters" }

type PartUsedForRepair struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	ReportID  uint64    `gorm:"not null;index" json:"report_id"`
	Uraian    string    `gorm:"size:255;not null" json:"uraian"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Images []PartUsedForImage `gorm:"foreignKey:PartUsedForRepairID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (PartUsedForRepair) TableName() string { return "part_used_for_repairs" }

// PartUsedForImage stores the stored-object key (folder-relative path) of an
// uploaded part image.
type PartUsedForImage struct {
	ID                  uint64    `gorm:"primaryKey;column:id" json:"id"`
	PartUsedForRepairID uint64    `gorm:"not null;index" json:"part_used_for_repair_id"`
	Image               string    `gorm:"size:255;not null" json:"image"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PartUsedForImage) TableName() string { return "part_used_for_repair_images" }
