package handler

import (
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/service"
)

// Handlers groups every HTTP handler so routing receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Parcel  *ParcelHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Parcel:  NewParcelHandler(s, services.Parcel),
	}
}
