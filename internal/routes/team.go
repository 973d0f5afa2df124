package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runTeamRouter(api *echo.Group, c *controllers.TeamController) {
	teams := api.Group("/teams")
	teams.GET("", c.GetTeams)
	teams.POST("", c.CreateTeam)
	teams.DELETE("/:id", c.DeleteTeam)
}
