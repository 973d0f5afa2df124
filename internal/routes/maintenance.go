package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runMaintenanceRouter(api *echo.Group, c *controllers.MaintenanceController) {
	requests := api.Group("/maintenance/requests")
	requests.GET("", c.GetRequests)
	requests.POST("", c.CreateRequest)
	requests.GET("/:id", c.FindRequest)
	requests.PATCH("/:id", c.UpdateRequest)
	requests.DELETE("/:id", c.DeleteRequest)
}
