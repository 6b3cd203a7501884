package service

import (
	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

// Services bundles every service the handlers depend on.
type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
	Job          *job.JobService
}

// NewServices builds all services from the shared server container and the
// repositories. Job is the server's job service, used for enqueueing tasks.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:        NewUserService(s, repos.Users),
		Properties:   NewPropertyService(s, repos.Properties),
		Reservations: NewReservationService(s, repos.Reservations),
		Job:          s.Job,
	}, nil
}
