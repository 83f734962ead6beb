package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/task/service"
)

type TaskCtrl struct{ s service.TaskService }

func New(s service.TaskService) *TaskCtrl { return &TaskCtrl{s} }

type createReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CropID      *string `json:"crop_id"`
}

func (h *TaskCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rg, err := dashboard.ParseDateRange(req.DueDate, "")
	if err != nil || rg.Start == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "due_date must be YYYY-MM-DD or RFC3339"})
	}
	t := &entities.Task{
		Base:        entities.Base{UserID: uid},
		Title:       req.Title,
		Description: req.Description,
		DueDate:     rg.Start.UTC().Truncate(time.Second),
		Priority:    entities.TaskPriority(req.Priority),
		Status:      entities.TaskStatus(req.Status),
		CropID:      req.CropID,
	}
	out, err := h.s.Create(c.Request().Context(), t)
	if errors.Is(err, service.ErrInvalidTask) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *TaskCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	rg, err := dashboard.ParseDateRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if !dashboard.ValidateDateRange(rg) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": dashboard.ErrInvalidDateRange.Error()})
	}
	out, err := h.s.List(c.Request().Context(), uid, rg.Start, rg.End, entities.TaskStatus(c.QueryParam("status")))
	if errors.Is(err, service.ErrInvalidTask) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Status == "" {
		body.Status = string(entities.TaskCompleted)
	}
	err := h.s.Patch(c.Request().Context(), c.Param("id"), uid, entities.TaskStatus(body.Status))
	switch {
	case errors.Is(err, service.ErrInvalidTask):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
