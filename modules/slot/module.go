package slot

import (
	"availability-api/core/database"
	"availability-api/core/middleware"
	"availability-api/modules/slot/controller"
	"availability-api/modules/slot/repository"
	"availability-api/modules/slot/router"
	"availability-api/modules/slot/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the slot module and registers routes. The repository is
// returned because the availability module projects calendars from slots.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) repository.SlotRepositoryInterface {
	repo := repository.NewSlotRepository(db)
	svc := service.NewSlotService(repo)
	ctrl := controller.NewSlotController(svc)

	router.NewSlotRouter(ctrl).Register(g, mw)

	return repo
}
