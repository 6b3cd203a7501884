package repository

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances, passed to the
// service layer as one dependency.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
}

// NewRepositories builds every repository on top of the server's pool and logger.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(s.DB.Pool, s.Logger),
		Properties:   NewPropertyRepository(s.DB.Pool, s.Logger),
		Reservations: NewReservationRepository(s.DB.Pool, s.Logger),
	}
}
