package router

import (
	"availability-api/core/middleware"
	"availability-api/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles availability routes
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Register registers availability routes
func (r *AvailabilityRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events/:id")

	events.GET("/calendar", r.AvailabilityController.Calendar)

	events.PUT("/votes", r.AvailabilityController.Vote)
	events.DELETE("/votes", r.AvailabilityController.Unvote)

	events.POST("/weeks/set", r.AvailabilityController.SetWeek)
	events.POST("/weeks/clear", r.AvailabilityController.ClearWeek)
	events.GET("/weeks/status", r.AvailabilityController.WeekStatus)
}
