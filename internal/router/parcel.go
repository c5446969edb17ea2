package router

import (
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerParcelRoutes mounts the action endpoint on the authenticated API group.
func registerParcelRoutes(api *echo.Group, h *handler.Handlers) {
	api.POST("/parcels", h.Parcel.Dispatch)
}
