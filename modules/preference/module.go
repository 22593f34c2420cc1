package preference

import (
	"availability-api/core/middleware"
	"availability-api/modules/preference/controller"
	"availability-api/modules/preference/repository"
	"availability-api/modules/preference/router"
	"availability-api/modules/preference/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Init initializes the preference module and registers routes
func Init(g *echo.Group, client *redis.Client, mw *middleware.Middleware) {
	repo := repository.NewPreferenceRepository(client)
	svc := service.NewPreferenceService(repo)
	ctrl := controller.NewPreferenceController(svc)

	router.NewPreferenceRouter(ctrl).Register(g, mw)
}
