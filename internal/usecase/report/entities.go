package report

import "io"

// FileUpload is an attachment already validated by the HTTP layer (image
// type, size cap). Name is the client-supplied filename, used only for its
// extension; stored names are generated.
type FileUpload struct {
	Name    string
	Content io.Reader
}

type DeviceWorkInput struct {
	MedicalDeviceID uint64   `json:"medical_device_id" validate:"required"`
	TypeOfWorkIDs   []uint64 `json:"type_of_work_ids" validate:"required,min=1"`
}

type SubmitInput struct {
	UserID           uint64            `json:"user_id" validate:"required"`
	EmployeeID       uint64            `json:"employee_id" validate:"required"`
	HealthFacilityID uint64            `json:"health_facility_id" validate:"required"`
	ReportNumber     string            `json:"report_number"`
	Problem          string            `json:"problem"`
	ErrorCode        string            `json:"error_code"`
	JobAction        string            `json:"job_action" validate:"required"`
	DeviceWorks      []DeviceWorkInput `json:"device_works" validate:"required,min=1,dive"`
	Latitude         string            `json:"latitude" validate:"required"`
	Longitude        string            `json:"longitude" validate:"required"`
	Address          string            `json:"address" validate:"required"`
}

type ParameterInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Uraian      *string `json:"uraian" validate:"omitempty,max=1000"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type PartUsedInput struct {
	Uraian   string `json:"uraian" validate:"required,max=255"`
	Quantity int    `json:"quantity" validate:"required,min=1"`

	Images []FileUpload `json:"-"`
}

type CompleteInput struct {
	ReportID           uint64
	CompletionStatusID uint64  `json:"completion_status_id" validate:"required"`
	Note               *string `json:"note" validate:"omitempty,max=1000"`
	Suggestion         *string `json:"suggestion" validate:"omitempty,max=1000"`
	CustomerName       *string `json:"customer_name" validate:"omitempty,max=255"`
	CustomerPhone      *string `json:"customer_phone" validate:"omitempty,max=20"`
	Latitude           string  `json:"latitude" validate:"required"`
	Longitude          string  `json:"longitude" validate:"required"`
	Address            string  `json:"address" validate:"required,max=255"`

	EmployeeSignature *FileUpload      `json:"-"`
	CustomerSignature *FileUpload      `json:"-"`
	Parameters        []ParameterInput `json:"parameters" validate:"omitempty,dive"`
	PartsUsed         []PartUsedInput  `json:"parts_used" validate:"omitempty,dive"`
}

type UpdateDetailInput struct {
	ReportID           uint64
	CompletionStatusID *uint64 `json:"completion_status_id"`
	Note               *string `json:"note" validate:"omitempty,max=1000"`
	Suggestion         *string `json:"suggestion" validate:"omitempty,max=1000"`
	CustomerName       *string `json:"customer_name" validate:"omitempty,max=255"`
	CustomerPhone      *string `json:"customer_phone" validate:"omitempty,max=20"`

	EmployeeSignature       *FileUpload `json:"-"`
	CustomerSignature       *FileUpload `json:"-"`
	RemoveEmployeeSignature bool        `json:"remove_employee_signature"`
	RemoveCustomerSignature bool        `json:"remove_customer_signature"`
}

type UpdateInput struct {
	ReportID         uint64
	UserID           *uint64 `json:"user_id"`
	EmployeeID       *uint64 `json:"employee_id"`
	HealthFacilityID *uint64 `json:"health_facility_id"`
	ReportNumber     *string `json:"report_number"`
	Problem          *string `json:"problem"`
	ErrorCode        *string `json:"error_code"`
	JobAction        *string `json:"job_action"`
}
