package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/database"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/health/controller"
)

const pingTimeout = 800 * time.Millisecond

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	guard *database.Guard
	log   *zap.Logger
}

func NewHealthCtrl(db *gorm.DB, guard *database.Guard, log *zap.Logger) controller.HealthController {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthCtrl{db: db, guard: guard, log: log}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the database and reports the breaker state.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	db := h.ping(ctx)

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
		h.log.Warn("health check failed", zap.String("database", db.Err))
	}

	breaker := "disabled"
	if h.guard != nil {
		breaker = h.guard.State().String()
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"breaker":  breaker,
		},
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
