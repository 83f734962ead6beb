package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/service"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
)

type CropCtrl struct{ s service.CropService }

func New(s service.CropService) *CropCtrl { return &CropCtrl{s} }

type createReq struct {
	Name                string   `json:"name"`
	Variety             *string  `json:"variety"`
	Status              string   `json:"status"`
	PlantingDate        string   `json:"planting_date"`
	ExpectedHarvestDate string   `json:"expected_harvest_date"`
	Area                *float64 `json:"area"`
	FieldID             *string  `json:"field_id"`
}

// day reads an optional "2006-01-02" or RFC3339 value; empty gives the zero time.
func day(raw string) (time.Time, error) {
	rg, err := dashboard.ParseDateRange(raw, "")
	if err != nil || rg.Start == nil {
		return time.Time{}, err
	}
	return rg.Start.UTC().Truncate(time.Second), nil
}

func (h *CropCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	planted, err := day(req.PlantingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be YYYY-MM-DD or RFC3339"})
	}
	expected, err := day(req.ExpectedHarvestDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "expected_harvest_date must be YYYY-MM-DD or RFC3339"})
	}
	crop := &entities.Crop{
		Base:                entities.Base{UserID: uid},
		Name:                req.Name,
		Variety:             req.Variety,
		Status:              entities.CropStatus(req.Status),
		PlantingDate:        planted,
		ExpectedHarvestDate: expected,
		Area:                req.Area,
		FieldID:             req.FieldID,
	}
	out, err := h.s.CreateCrop(c.Request().Context(), crop)
	if errors.Is(err, service.ErrInvalidCrop) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.s.ListCrops(c.Request().Context(), uid, c.QueryParam("active") == "true")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Patch(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	err := h.s.UpdateStatus(c.Request().Context(), c.Param("id"), uid, entities.CropStatus(body.Status))
	switch {
	case errors.Is(err, service.ErrInvalidCrop):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
