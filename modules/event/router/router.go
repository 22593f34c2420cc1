package router

import (
	"availability-api/core/middleware"
	"availability-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Register registers event routes
func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")

	events.POST("", r.EventController.Create)
	events.GET("/:id", r.EventController.Get)
	events.PUT("/:id", r.EventController.Update)
	events.DELETE("/:id", r.EventController.Delete)

	events.POST("/:id/members", r.EventController.AddMember)
	events.DELETE("/:id/members/:user_id", r.EventController.RemoveMember)

	// The user picker loads a member's events from here
	g.GET("/users/:id/events", r.EventController.ListForUser)
}
