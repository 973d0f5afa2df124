package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runEquipmentRouter(api *echo.Group, c *controllers.EquipmentController) {
	equipment := api.Group("/equipment")
	equipment.GET("", c.GetEquipment)
	equipment.POST("", c.CreateEquipment)
	equipment.GET("/:id", c.FindEquipment)
	equipment.PATCH("/:id", c.UpdateEquipment)
	equipment.POST("/:id/documents", c.UploadDocument)
}
