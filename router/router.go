package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	activityCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/controller"
	authCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/auth/controller"
	cropCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/controller"
	dashboardCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/controller"
	equipmentCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/controller"
	fieldCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/field/controller"
	healthCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/health/controller"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/middleware"
	taskCtrl "github.com/baobabstack-code/farm-management-system-sub000/pkg/task/controller"
)

type Controllers struct {
	Field     fieldCtrl.FieldController
	Crop      cropCtrl.CropController
	Equipment equipmentCtrl.EquipmentController
	Task      taskCtrl.TaskController
	Activity  activityCtrl.ActivityController
	Finance   interface{ Register(*echo.Group) }
	Auth      authCtrl.AuthController
	Dashboard dashboardCtrl.DashboardController
	Health    healthCtrl.HealthController
}

func New(e *echo.Echo, log *zap.Logger, requireIdentity bool, ctl Controllers) *echo.Echo {
	e.GET("/health", ctl.Health.Health)

	// logger first so requests refused by Identity are still logged
	api := e.Group("/api", middleware.RequestLogger(log), middleware.Identity(requireIdentity))

	api.GET("/whoami", ctl.Auth.WhoAmI)
	api.GET("/devlogin", ctl.Auth.DevLogin)

	api.POST("/fields", ctl.Field.Create)
	api.GET("/fields", ctl.Field.List)
	api.GET("/fields/:id", ctl.Field.Get)

	api.POST("/crops", ctl.Crop.Create)
	api.GET("/crops", ctl.Crop.List)
	api.PATCH("/crops/:id", ctl.Crop.Patch)

	api.POST("/equipment", ctl.Equipment.Create)
	api.GET("/equipment", ctl.Equipment.List)

	api.POST("/tasks", ctl.Task.Create)
	api.GET("/tasks", ctl.Task.List)
	api.PATCH("/tasks/:id", ctl.Task.Patch)

	api.POST("/activities/:kind", ctl.Activity.Create)
	api.GET("/activities/:kind", ctl.Activity.List)

	ctl.Finance.Register(api.Group("/finance"))

	d := api.Group("/dashboard")
	d.GET("/summary", ctl.Dashboard.Summary)
	d.GET("/stats", ctl.Dashboard.Stats)
	d.GET("/recent-tasks", ctl.Dashboard.RecentTasks)
	d.GET("/upcoming-harvests", ctl.Dashboard.UpcomingHarvests)
	d.GET("/financial", ctl.Dashboard.Financial)
	d.GET("/alerts", ctl.Dashboard.Alerts)
	d.GET("/quick-stats", ctl.Dashboard.QuickStats)
	return e
}
