package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runDashboardRouter(api *echo.Group, c *controllers.DashboardController) {
	dashboard := api.Group("/dashboard")
	dashboard.GET("/metrics", c.GetMetrics)
}
