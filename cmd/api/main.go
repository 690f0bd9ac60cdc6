package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	httpadp "fieldservice-backend/internal/adapter/http"
	"fieldservice-backend/internal/adapter/middleware"
	"fieldservice-backend/internal/adapter/repository/mysql"
	"fieldservice-backend/internal/config"
	"fieldservice-backend/internal/infrastructure/cache"
	"fieldservice-backend/internal/infrastructure/db"
	"fieldservice-backend/internal/infrastructure/storage"
	"fieldservice-backend/internal/usecase/auth"
	"fieldservice-backend/internal/usecase/catalog"
	"fieldservice-backend/internal/usecase/device"
	"fieldservice-backend/internal/usecase/employee"
	"fieldservice-backend/internal/usecase/facility"
	"fieldservice-backend/internal/usecase/report"
	"fieldservice-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// redis is optional: without it tokens are not revocable and report
	// submissions are not idempotent, but the API still serves
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("open redis: %v", err)
		}
	}

	store := storage.NewLocalStore(cfg.StorageDir, cfg.AppURL)

	userRepo := mysql.NewUserRepository(gdb)
	employeeRepo := mysql.NewEmployeeRepository(gdb)
	facilityRepo := mysql.NewFacilityRepository(gdb)
	deviceRepo := mysql.NewDeviceRepository(gdb)
	catalogRepo := mysql.NewCatalogRepository(gdb)
	reportRepo := mysql.NewReportRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	var denylist auth.Denylist
	if rdb != nil {
		denylist = cache.NewTokenDenylist(rdb)
	}

	authUC := auth.NewUsecase(userRepo, denylist, cfg.JWTSecret)
	userUC := user.NewUsecase(userRepo)
	employeeUC := employee.NewUsecase(employeeRepo, userRepo)
	facilityUC := facility.NewUsecase(facilityRepo, catalogRepo)
	deviceUC := device.NewUsecase(deviceRepo, catalogRepo)
	catalogUC := catalog.NewUsecase(catalogRepo)
	reportUC := report.NewUsecase(reportRepo, txm, store)

	h := httpadp.Handlers{
		Base:       httpadp.NewHandler(),
		Auth:       httpadp.NewAuthHandler(authUC),
		Users:      httpadp.NewUserHandler(userUC),
		Employees:  httpadp.NewEmployeeHandler(employeeUC),
		Facilities: httpadp.NewFacilityHandler(facilityUC),
		Devices:    httpadp.NewDeviceHandler(deviceUC),
		Catalog:    httpadp.NewCatalogHandler(catalogUC),
		Reports:    httpadp.NewReportHandler(reportUC, store),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	authn := middleware.Authenticate(cfg.JWTSecret, userRepo, denylist)
	var idemp echo.MiddlewareFunc
	if rdb != nil {
		idemp = middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	}
	httpadp.RegisterRoutes(e, h, authn, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
