package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
	"maintenance-system/pkg/middleware"
)

func runAuthRouter(api *echo.Group, c *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	auth := api.Group("/auth")
	auth.POST("/register", c.Register)
	auth.POST("/login", c.Login)
	auth.POST("/refresh", c.Refresh)
	auth.POST("/logout", c.Logout, authMW.Auth)
	auth.GET("/me", c.Me, authMW.Auth)
}
