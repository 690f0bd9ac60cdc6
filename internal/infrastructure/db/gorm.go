package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/internal/domain/device"
	"fieldservice-backend/internal/domain/employee"
	"fieldservice-backend/internal/domain/facility"
	"fieldservice-backend/internal/domain/report"
	"fieldservice-backend/internal/domain/user"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// duplicate-key errors become gorm.ErrDuplicatedKey; the report-number
		// retry loop depends on this
		TranslateError: true,
	}
}

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dial, gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates/updates the full schema. Order matters for foreign keys:
// referenced tables first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.Permission{},
		&user.Role{},
		&user.User{},
		&employee.Region{},
		&employee.Division{},
		&employee.Position{},
		&employee.Employee{},
		&catalog.TypeOfWork{},
		&catalog.CompletionStatus{},
		&catalog.MedicalDeviceCategory{},
		&catalog.TypeOfHealthFacility{},
		&device.MedicalDevice{},
		&facility.HealthFacility{},
		&report.Report{},
		&report.Location{},
		&report.ReportDeviceItem{},
		&report.ReportDetail{},
		&report.Parameter{},
		&report.PartUsedForRepair{},
		&report.PartUsedForImage{},
	)
}
