package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// DefaultReservationLimit applies when a caller passes a non-positive limit.
const DefaultReservationLimit = 10

// ReservationRepository reads a guest's reservations.
type ReservationRepository struct {
	db  DBTX
	log *zerolog.Logger
}

// NewReservationRepository returns a ReservationRepository backed by db.
func NewReservationRepository(db DBTX, log *zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, log: log}
}

// ListForGuest returns the properties guestID has reserved, earliest start
// date first. Only properties with at least one review are listed.
func (r *ReservationRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.Property, error) {
	if limit <= 0 {
		limit = DefaultReservationLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+qualifiedPropertyColumns+`
		FROM reservations
		JOIN properties ON reservations.property_id = properties.id
		JOIN property_reviews ON properties.id = property_reviews.property_id
		WHERE reservations.guest_id = $1
		GROUP BY properties.id, reservations.id
		ORDER BY reservations.start_date
		LIMIT $2`,
		guestID, limit,
	)
	if err != nil {
		r.log.Error().Err(err).Str("operation", "list_guest_reservations").Int64("guest_id", guestID).Msg("query failed")
		return nil, fmt.Errorf("listing reservations for guest %d: %w", guestID, err)
	}

	properties, err := pgx.CollectRows(rows, scanProperty)
	if err != nil {
		r.log.Error().Err(err).Str("operation", "list_guest_reservations").Int64("guest_id", guestID).Msg("scan failed")
		return nil, fmt.Errorf("reading reservations for guest %d: %w", guestID, err)
	}
	return properties, nil
}
