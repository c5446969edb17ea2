package router

import (
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/handler"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the parcel API:
// health, the docs UI and the static docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
