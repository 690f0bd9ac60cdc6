package http

import (
	"github.com/labstack/echo/v4"

	"fieldservice-backend/internal/adapter/middleware"
)

// Handlers bundles the resource handlers for route registration.
type Handlers struct {
	Base       *Handler
	Auth       *AuthHandler
	Users      *UserHandler
	Employees  *EmployeeHandler
	Facilities *FacilityHandler
	Devices    *DeviceHandler
	Catalog    *CatalogHandler
	Reports    *ReportHandler
}

// RegisterRoutes wires all endpoints. authn guards every route below /auth;
// idemp, when non-nil, is applied to the mutating report routes only.
func RegisterRoutes(e *echo.Echo, h Handlers, authn echo.MiddlewareFunc, idemp echo.MiddlewareFunc) {
	perm := middleware.RequirePermission

	e.GET("/health", h.Base.Health)

	// public auth endpoints
	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)
	e.POST("/auth/refresh", h.Auth.Refresh)

	api := e.Group("", authn)

	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/auth/profile", h.Auth.Profile)

	// users, roles, permissions
	api.GET("/users", h.Users.List, perm("user.read"))
	api.GET("/users/:id", h.Users.Get, perm("user.read"))
	api.PUT("/users/:id", h.Users.Update, perm("user.update"))
	api.DELETE("/users/:id", h.Users.Delete, perm("user.delete"))
	api.GET("/roles", h.Users.ListRoles, perm("user.read"))
	api.GET("/permissions", h.Users.ListPermissions, perm("user.read"))

	// employees and their lookup tables
	api.GET("/employees", h.Employees.List, perm("employee.read"))
	api.GET("/employees/:id", h.Employees.Get, perm("employee.read"))
	api.POST("/employees", h.Employees.Create, perm("employee.create"))
	api.PUT("/employees/:id", h.Employees.Update, perm("employee.update"))
	api.DELETE("/employees/:id", h.Employees.Delete, perm("employee.delete"))
	api.GET("/employees/:id/report", h.Reports.ListByEmployee, perm("report.read"))
	api.GET("/regions", h.Employees.ListRegions, perm("employee.read"))
	api.GET("/divisions", h.Employees.ListDivisions, perm("employee.read"))
	api.GET("/positions", h.Employees.ListPositions, perm("employee.read"))

	// health facilities
	api.GET("/health-facilities", h.Facilities.List, perm("health_facility.read"))
	api.GET("/health-facilities/:id", h.Facilities.Get, perm("health_facility.read"))
	api.GET("/health-facilities/slug/:slug", h.Facilities.GetBySlug, perm("health_facility.read"))
	api.POST("/health-facilities", h.Facilities.Create, perm("health_facility.create"))
	api.PUT("/health-facilities/:id", h.Facilities.Update, perm("health_facility.update"))
	api.DELETE("/health-facilities/:id", h.Facilities.Delete, perm("health_facility.delete"))
	api.POST("/health-facilities/:id/devices", h.Facilities.AttachDevices, perm("health_facility.update"))
	api.DELETE("/health-facilities/:id/devices/:device_id", h.Facilities.DetachDevice, perm("health_facility.update"))

	// medical devices
	api.GET("/medical-devices", h.Devices.List, perm("medical_device.read"))
	api.GET("/medical-devices/:id", h.Devices.Get, perm("medical_device.read"))
	api.POST("/medical-devices", h.Devices.Create, perm("medical_device.create"))
	api.PUT("/medical-devices/:id", h.Devices.Update, perm("medical_device.update"))
	api.DELETE("/medical-devices/:id", h.Devices.Delete, perm("medical_device.delete"))

	// catalog resources
	api.GET("/type-of-works", h.Catalog.ListWorkTypes, perm("catalog.read"))
	api.GET("/type-of-works/:id", h.Catalog.GetWorkType, perm("catalog.read"))
	api.GET("/type-of-works/slug/:slug", h.Catalog.GetWorkTypeBySlug, perm("catalog.read"))
	api.POST("/type-of-works", h.Catalog.CreateWorkType, perm("catalog.create"))
	api.PUT("/type-of-works/:id", h.Catalog.UpdateWorkType, perm("catalog.update"))
	api.DELETE("/type-of-works/:id", h.Catalog.DeleteWorkType, perm("catalog.delete"))

	api.GET("/completion-statuses", h.Catalog.ListCompletionStatuses, perm("catalog.read"))
	api.GET("/completion-statuses/:id", h.Catalog.GetCompletionStatus, perm("catalog.read"))
	api.GET("/completion-statuses/slug/:slug", h.Catalog.GetCompletionStatusBySlug, perm("catalog.read"))
	api.POST("/completion-statuses", h.Catalog.CreateCompletionStatus, perm("catalog.create"))
	api.PUT("/completion-statuses/:id", h.Catalog.UpdateCompletionStatus, perm("catalog.update"))
	api.DELETE("/completion-statuses/:id", h.Catalog.DeleteCompletionStatus, perm("catalog.delete"))

	api.GET("/medical-device-categories", h.Catalog.ListDeviceCategories, perm("catalog.read"))
	api.GET("/medical-device-categories/:id", h.Catalog.GetDeviceCategory, perm("catalog.read"))
	api.GET("/medical-device-categories/slug/:slug", h.Catalog.GetDeviceCategoryBySlug, perm("catalog.read"))
	api.POST("/medical-device-categories", h.Catalog.CreateDeviceCategory, perm("catalog.create"))
	api.PUT("/medical-device-categories/:id", h.Catalog.UpdateDeviceCategory, perm("catalog.update"))
	api.DELETE("/medical-device-categories/:id", h.Catalog.DeleteDeviceCategory, perm("catalog.delete"))

	api.GET("/type-of-health-facilities", h.Catalog.ListFacilityTypes, perm("catalog.read"))
	api.GET("/type-of-health-facilities/:id", h.Catalog.GetFacilityType, perm("catalog.read"))
	api.GET("/type-of-health-facilities/slug/:slug", h.Catalog.GetFacilityTypeBySlug, perm("catalog.read"))
	api.POST("/type-of-health-facilities", h.Catalog.CreateFacilityType, perm("catalog.create"))
	api.PUT("/type-of-health-facilities/:id", h.Catalog.UpdateFacilityType, perm("catalog.update"))
	api.DELETE("/type-of-health-facilities/:id", h.Catalog.DeleteFacilityType, perm("catalog.delete"))

	// reports
	api.GET("/reports", h.Reports.List, perm("report.read"))
	api.GET("/reports/:id", h.Reports.Get, perm("report.read"))
	api.GET("/report/preview-number", h.Reports.PreviewNumber, perm("report.create"))

	mutating := []echo.MiddlewareFunc{perm("report.create")}
	if idemp != nil {
		mutating = append(mutating, idemp)
	}
	api.POST("/reports", h.Reports.Submit, mutating...)

	completing := []echo.MiddlewareFunc{perm("report.update")}
	if idemp != nil {
		completing = append(completing, idemp)
	}
	api.POST("/reports/:id/complete", h.Reports.Complete, completing...)
	api.PUT("/reports/:id/detail", h.Reports.UpdateDetail, completing...)
	api.PUT("/reports/:id", h.Reports.Update, completing...)
	api.DELETE("/reports/:id", h.Reports.Delete, perm("report.delete"))

	// stored signature images
	api.GET("/storage/signatures/:type/:file", h.Reports.ServeSignature, perm("report.read"))
}
