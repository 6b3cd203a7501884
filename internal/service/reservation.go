package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

// ReservationService reads a guest's reservation history.
type ReservationService struct {
	server       *server.Server
	reservations *repository.ReservationRepository
}

// NewReservationService creates a ReservationService.
func NewReservationService(s *server.Server, reservations *repository.ReservationRepository) *ReservationService {
	return &ReservationService{
		server:       s,
		reservations: reservations,
	}
}

// ListForGuest returns the properties a guest has booked; a non-positive
// limit falls back to repository.DefaultReservationLimit.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.Property, error) {
	return s.reservations.ListForGuest(ctx, guestID, limit)
}
