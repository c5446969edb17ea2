package repository

import (
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Parcel *ParcelRepository
}

// NewRepositories builds every repository on the shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Parcel: NewParcelRepository(s.DB.DB),
	}
}
