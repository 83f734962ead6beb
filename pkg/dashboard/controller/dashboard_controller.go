package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Summary(c echo.Context) error
	Stats(c echo.Context) error
	RecentTasks(c echo.Context) error
	UpcomingHarvests(c echo.Context) error
	Financial(c echo.Context) error
	Alerts(c echo.Context) error
	QuickStats(c echo.Context) error
}
