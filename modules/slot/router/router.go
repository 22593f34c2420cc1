package router

import (
	"availability-api/core/middleware"
	"availability-api/modules/slot/controller"

	"github.com/labstack/echo/v4"
)

// SlotRouter handles slot template routes
type SlotRouter struct {
	SlotController *controller.SlotController
}

func NewSlotRouter(slotController *controller.SlotController) *SlotRouter {
	return &SlotRouter{
		SlotController: slotController,
	}
}

// Register registers slot routes
func (r *SlotRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	g.GET("/events/:id/slots", r.SlotController.ListForEvent)
	g.POST("/events/:id/slots", r.SlotController.Create)
	g.DELETE("/slots/:id", r.SlotController.Delete)
}
