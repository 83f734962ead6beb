package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baobabstack-code/farm-management-system-sub000/pkg/auth/controller"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/middleware"
)

type authCtrl struct {
	// devLogin is false when identity comes from the upstream provider.
	devLogin bool
}

func NewAuthController(devLogin bool) controller.AuthController { return &authCtrl{devLogin: devLogin} }

// DevLogin switches the development owner id.
func (h *authCtrl) DevLogin(c echo.Context) error {
	if !h.devLogin {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "dev login disabled"})
	}
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = middleware.DefaultDevUID
	}
	c.SetCookie(&http.Cookie{Name: middleware.UIDCookie, Value: uid, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
