package availability

import (
	"availability-api/core/database"
	"availability-api/core/middleware"
	"availability-api/modules/availability/controller"
	"availability-api/modules/availability/repository"
	"availability-api/modules/availability/router"
	"availability-api/modules/availability/service"
	eventRepo "availability-api/modules/event/repository"
	slotRepo "availability-api/modules/slot/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes. The
// service is returned so the server can register the retention task
// handler with asynq.
func Init(
	g *echo.Group,
	db database.Database,
	mw *middleware.Middleware,
	slots slotRepo.SlotRepositoryInterface,
	events eventRepo.EventRepositoryInterface,
) *service.AvailabilityService {
	votes := repository.NewVoteRepository(db)
	svc := service.NewAvailabilityService(votes, slots, events)
	ctrl := controller.NewAvailabilityController(svc)

	router.NewAvailabilityRouter(ctrl).Register(g, mw)

	return svc
}
