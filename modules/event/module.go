package event

import (
	"availability-api/core/database"
	"availability-api/core/middleware"
	"availability-api/modules/event/controller"
	"availability-api/modules/event/repository"
	"availability-api/modules/event/router"
	"availability-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The repository is
// returned as well because the availability module reads events and
// memberships through it.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) repository.EventRepositoryInterface {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(g, mw)

	return repo
}
