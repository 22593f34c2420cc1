package router

import (
	"availability-api/core/middleware"
	"availability-api/modules/preference/controller"

	"github.com/labstack/echo/v4"
)

// PreferenceRouter handles preference routes
type PreferenceRouter struct {
	PreferenceController *controller.PreferenceController
}

func NewPreferenceRouter(preferenceController *controller.PreferenceController) *PreferenceRouter {
	return &PreferenceRouter{
		PreferenceController: preferenceController,
	}
}

// Register registers preference routes
func (r *PreferenceRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	prefs := g.Group("/preferences")

	prefs.GET("/:client_id", r.PreferenceController.Get)
	prefs.PUT("/:client_id", r.PreferenceController.Set)
	prefs.DELETE("/:client_id", r.PreferenceController.Delete)
}
