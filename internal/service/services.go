// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/job"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/repository"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
)

type Services struct {
	Auth   *AuthService
	Parcel *ParcelService
	Job    *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var jobs ParcelEnqueuer
	if s.Job != nil {
		jobs = s.Job
	}

	return &Services{
		Auth:   NewAuthService(s),
		Parcel: NewParcelService(repos.Parcel, jobs),
		Job:    s.Job,
	}, nil
}
