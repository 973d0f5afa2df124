package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runCategoryRouter(api *echo.Group, c *controllers.CategoryController) {
	categories := api.Group("/equipment-categories")
	categories.GET("", c.GetCategories)
	categories.POST("", c.CreateCategory)
	categories.PATCH("/:id", c.UpdateCategory)
	categories.DELETE("/:id", c.DeleteCategory)
}
