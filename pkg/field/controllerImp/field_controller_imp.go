package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/field/service"
)

type FieldCtrl struct{ s service.FieldService }

func New(s service.FieldService) *FieldCtrl { return &FieldCtrl{s} }

type createReq struct {
	Name      string   `json:"name"`
	Area      *float64 `json:"area"`
	SoilType  string   `json:"soil_type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
	IsActive  *bool    `json:"is_active"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Field{
		Base:      entities.Base{UserID: uid},
		Name:      req.Name,
		Area:      req.Area,
		SoilType:  req.SoilType,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}
	out, err := h.s.CreateField(c.Request().Context(), f)
	if errors.Is(err, service.ErrInvalidField) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	f, err := h.s.GetFieldByID(c.Request().Context(), c.Param("id"), uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.s.ListFields(c.Request().Context(), uid, c.QueryParam("active") == "true")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
