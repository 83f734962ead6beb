package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/controller"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/service"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	defaultDays  = 30
	maxDays      = 365
)

// envelope wraps every dashboard response.
type envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

type dashboardCtrl struct {
	s       service.DashboardService
	log     *zap.Logger
	timeout time.Duration
}

func New(s service.DashboardService, log *zap.Logger, timeout time.Duration) controller.DashboardController {
	if log == nil {
		log = zap.NewNop()
	}
	return &dashboardCtrl{s: s, log: log, timeout: timeout}
}

func (h *dashboardCtrl) Summary(c echo.Context) error {
	rg, err := dashboard.ParseDateRange(c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.s.Summary(ctx, owner(c), rg)
	return h.respond(c, "summary", out, err)
}

func (h *dashboardCtrl) Stats(c echo.Context) error {
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.s.Stats(ctx, owner(c))
	return h.respond(c, "stats", out, err)
}

func (h *dashboardCtrl) RecentTasks(c echo.Context) error {
	limit, err := positiveInt(c.QueryParam("limit"), defaultLimit, maxLimit)
	if err != nil {
		return fail(c, http.StatusBadRequest, "limit: "+err.Error())
	}
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.s.RecentTasks(ctx, owner(c), limit)
	return h.respond(c, "recent tasks", out, err)
}

func (h *dashboardCtrl) UpcomingHarvests(c echo.Context) error {
	days, err := positiveInt(c.QueryParam("days"), defaultDays, maxDays)
	if err != nil {
		return fail(c, http.StatusBadRequest, "days: "+err.Error())
	}
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.s.UpcomingHarvests(ctx, owner(c), days)
	return h.respond(c, "upcoming harvests", out, err)
}

func (h *dashboardCtrl) Financial(c echo.Context) error {
	rg, err := dashboard.ParseDateRange(c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.s.FinancialSummary(ctx, owner(c), rg)
	return h.respond(c, "financial summary", out, err)
}

func (h *dashboardCtrl) Alerts(c echo.Context) error {
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.s.Alerts(ctx, owner(c))
	return h.respond(c, "alerts", out, err)
}

func (h *dashboardCtrl) QuickStats(c echo.Context) error {
	ctx, cancel := h.context(c)
	defer cancel()

	out, err := h.s.QuickStats(ctx, owner(c))
	return h.respond(c, "quick stats", out, err)
}

func (h *dashboardCtrl) context(c echo.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request().Context())
	}
	return context.WithTimeout(c.Request().Context(), h.timeout)
}

func (h *dashboardCtrl) respond(c echo.Context, what string, data any, err error) error {
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, envelope{Success: true, Data: data, Timestamp: now()})
	case errors.Is(err, dashboard.ErrInvalidDateRange), errors.Is(err, dashboard.ErrOwnerRequired):
		return fail(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("dashboard read failed",
			zap.String("read", what),
			zap.String("owner", owner(c)),
			zap.Error(err),
		)
		return fail(c, http.StatusInternalServerError, "failed to load "+what)
	}
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, envelope{Success: false, Error: msg, Timestamp: now()})
}

func owner(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

func now() string { return dashboard.ISO(time.Now()) }

// positiveInt parses an optional query value, clamping it to ceiling.
func positiveInt(raw string, def, ceiling int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	if n > ceiling {
		n = ceiling
	}
	return n, nil
}
