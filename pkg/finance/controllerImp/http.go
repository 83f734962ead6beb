package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
	fsvc "github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/service"
)

type httpCtrl struct{ s fsvc.Service }

func New(s fsvc.Service) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) Register(g *echo.Group) {
	g.POST("/transactions", h.create)
	g.GET("/transactions", h.list)
	g.PATCH("/transactions/:id", h.patch)
}

func (h *httpCtrl) create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in entities.FinancialTransaction
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	in.Base = entities.Base{UserID: uid}
	if err := h.s.Create(c.Request().Context(), &in); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *httpCtrl) list(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	rg, err := dashboard.ParseDateRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if !dashboard.ValidateDateRange(rg) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": dashboard.ErrInvalidDateRange.Error()})
	}
	list, err := h.s.ListByRange(c.Request().Context(), uid, rg.Start, rg.End)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *httpCtrl) patch(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in fsvc.TransactionPatch
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.UpdatePartial(c.Request().Context(), c.Param("id"), uid, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, fsvc.ErrInvalidTransaction):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
