package router

import (
	"availability-api/core/middleware"
	"availability-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

// UserRouter handles user routes
type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{
		UserController: userController,
	}
}

// Register registers user routes
func (r *UserRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	users := g.Group("/users")

	users.GET("", r.UserController.List)
	users.GET("/:id", r.UserController.Get)
	users.POST("", r.UserController.Create)
}
