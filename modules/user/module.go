package user

import (
	"availability-api/core/database"
	"availability-api/core/middleware"
	"availability-api/modules/user/controller"
	"availability-api/modules/user/repository"
	"availability-api/modules/user/router"
	"availability-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the user module and registers routes
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) service.UserServiceInterface {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Register(g, mw)

	return svc
}
