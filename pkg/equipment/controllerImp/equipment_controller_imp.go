package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/service"
)

type EquipmentCtrl struct{ s service.EquipmentService }

func New(s service.EquipmentService) *EquipmentCtrl { return &EquipmentCtrl{s} }

func (h *EquipmentCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in entities.Equipment
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in.Base = entities.Base{UserID: uid}
	out, err := h.s.AddEquipment(c.Request().Context(), &in)
	if errors.Is(err, service.ErrInvalidEquipment) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *EquipmentCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.s.ListEquipment(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
