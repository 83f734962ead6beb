package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/service"
)

const defaultDays = 60

type ActivityCtrl struct{ s service.ActivityService }

func New(s service.ActivityService) *ActivityCtrl { return &ActivityCtrl{s} }

// Create binds the body according to the :kind path segment.
func (h *ActivityCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	ctx := c.Request().Context()

	var (
		out any
		err error
	)
	switch service.Kind(c.Param("kind")) {
	case service.Irrigation:
		var l entities.IrrigationLog
		if err := c.Bind(&l); err != nil {
			return badJSON(c)
		}
		l.Base = entities.Base{UserID: uid}
		out, err = h.s.LogIrrigation(ctx, &l)
	case service.Fertilizer:
		var l entities.FertilizerLog
		if err := c.Bind(&l); err != nil {
			return badJSON(c)
		}
		l.Base = entities.Base{UserID: uid}
		out, err = h.s.LogFertilizer(ctx, &l)
	case service.Harvest:
		var l entities.HarvestLog
		if err := c.Bind(&l); err != nil {
			return badJSON(c)
		}
		l.Base = entities.Base{UserID: uid}
		l.Crop = nil
		out, err = h.s.LogHarvest(ctx, &l)
	case service.PestDisease:
		var l entities.PestDiseaseLog
		if err := c.Bind(&l); err != nil {
			return badJSON(c)
		}
		l.Base = entities.Base{UserID: uid}
		out, err = h.s.LogPestDisease(ctx, &l)
	default:
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown activity kind"})
	}
	if errors.Is(err, service.ErrInvalidActivity) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ActivityCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	days := defaultDays
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "days must be a positive integer"})
		}
		days = n
	}
	out, err := h.s.Recent(c.Request().Context(), uid, service.Kind(c.Param("kind")), days)
	if errors.Is(err, service.ErrUnknownKind) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown activity kind"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func badJSON(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
}
