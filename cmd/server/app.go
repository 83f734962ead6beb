package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/config"
	"github.com/baobabstack-code/farm-management-system-sub000/database"
	"github.com/baobabstack-code/farm-management-system-sub000/logging"
	"github.com/baobabstack-code/farm-management-system-sub000/router"

	// Activity
	activityCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/controllerImp"
	activityRepoImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/repositoryImp"
	activitySvcImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/serviceImp"

	// Auth + Health
	authCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/auth/controllerImp"
	healthCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/health/controllerImp"

	// Crop
	cropCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/controllerImp"
	cropRepoImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/repositoryImp"
	cropSvcImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/serviceImp"

	// Dashboard
	dashCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/controllerImp"
	dashRepoImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/repositoryImp"
	dashSvcImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/serviceImp"
	dashSvc "github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/service"

	// Equipment
	equipmentCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/controllerImp"
	equipmentRepoImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/repositoryImp"
	equipmentSvcImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/serviceImp"

	// Field
	fieldCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/field/controllerImp"
	fieldRepoImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/field/repositoryImp"
	fieldSvcImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/field/serviceImp"

	// Finance
	finCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/controllerImp"
	finRepoImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/repositoryImp"
	finSvcImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/serviceImp"

	// Task
	taskCtrlImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/task/controllerImp"
	taskRepoImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/task/repositoryImp"
	taskSvcImp "github.com/baobabstack-code/farm-management-system-sub000/pkg/task/serviceImp"
)

// app holds what every subcommand needs once config is read.
type app struct {
	cfg   config.AppConfig
	log   *zap.Logger
	db    *gorm.DB
	guard *database.Guard
	// now is the one clock behind every "now"-relative dashboard window.
	now func() time.Time
}

// bootstrap reads config, builds the logger and opens the database.
// migrate additionally runs AutoMigrate.
func bootstrap(migrate bool) (*app, error) {
	cfg, envLoaded := config.Load()
	log, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded", zap.Bool("dotenv", envLoaded), zap.String("driver", cfg.DBDriver))

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.ConfigurePool(db, cfg.DBDriver); err != nil {
		return nil, err
	}
	if migrate {
		if err := database.Migrate(db); err != nil {
			database.Close(db, log)
			return nil, err
		}
	}

	guard := database.NewGuard(database.GuardConfig{
		Retry: database.RetryPolicy{
			MaxAttempts: cfg.RetryAttempts,
			BaseDelay:   cfg.RetryBase,
			MaxDelay:    cfg.RetryMax,
		},
		FailureThreshold: cfg.BreakerFailures,
	}, log)

	return &app{cfg: cfg, log: log, db: db, guard: guard, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (a *app) close() {
	database.Close(a.db, a.log)
	_ = a.log.Sync()
}

func (a *app) dashboard() dashSvc.DashboardService {
	r := dashRepoImp.New(a.db, a.guard, dashRepoImp.WithClock(a.now))
	return dashSvcImp.New(r, a.log, dashSvcImp.WithClock(a.now))
}

// server wires every repository, service and controller into an echo instance.
func (a *app) server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	return router.New(e, a.log, a.cfg.RequireIdentity, router.Controllers{
		Field:     fieldCtrlImp.New(fieldSvcImp.NewFieldService(fieldRepoImp.New(a.db))),
		Crop:      cropCtrlImp.New(cropSvcImp.NewCropService(cropRepoImp.New(a.db))),
		Equipment: equipmentCtrlImp.New(equipmentSvcImp.NewEquipmentService(equipmentRepoImp.New(a.db))),
		Task:      taskCtrlImp.New(taskSvcImp.NewTaskService(taskRepoImp.New(a.db))),
		Activity:  activityCtrlImp.New(activitySvcImp.NewActivityService(activityRepoImp.New(a.db))),
		Finance:   finCtrlImp.New(finSvcImp.New(finRepoImp.New(a.db))),
		Auth:      authCtrlImp.NewAuthController(!a.cfg.RequireIdentity),
		Dashboard: dashCtrlImp.New(a.dashboard(), a.log, a.cfg.DashboardTimeout),
		Health:    healthCtrlImp.NewHealthCtrl(a.db, a.guard, a.log),
	})
}
