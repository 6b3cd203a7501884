package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// propertyColumns is the column order every property scan relies on.
var propertyColumns = []string{
	"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
	"cost_per_night", "parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
	"country", "street", "city", "province", "post_code", "active",
}

var (
	plainPropertyColumns     = strings.Join(propertyColumns, ", ")
	qualifiedPropertyColumns = "properties." + strings.Join(propertyColumns, ", properties.")
)

// propertyFields returns scan targets for p in propertyColumns order.
func propertyFields(p *model.Property) []any {
	return []any{
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL, &p.CoverPhotoURL,
		&p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
		&p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active,
	}
}

func scanProperty(row pgx.CollectableRow) (model.Property, error) {
	var p model.Property
	err := row.Scan(propertyFields(&p)...)
	return p, err
}

func scanRatedProperty(row pgx.CollectableRow) (model.RatedProperty, error) {
	var rp model.RatedProperty
	err := row.Scan(append(propertyFields(&rp.Property), &rp.AverageRating)...)
	return rp, err
}

// PropertyRepository reads and writes the properties table.
type PropertyRepository struct {
	db  DBTX
	log *zerolog.Logger
}

// NewPropertyRepository returns a PropertyRepository that runs its queries on db.
// Query failures are logged to log before being returned.
func NewPropertyRepository(db DBTX, log *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, log: log}
}

// Search returns at most PropertySearchLimit properties that have at least one
// review and match every present filter, cheapest first, each with its
// average rating.
func (r *PropertyRepository) Search(ctx context.Context, opts PropertySearch) ([]model.RatedProperty, error) {
	query, args := buildPropertySearch(opts)

	r.log.Debug().Str("sql", query).Interface("args", args).Msg("searching properties")

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error().Err(err).Str("operation", "search_properties").Msg("query failed")
		return nil, fmt.Errorf("searching properties: %w", err)
	}

	properties, err := pgx.CollectRows(rows, scanRatedProperty)
	if err != nil {
		r.log.Error().Err(err).Str("operation", "search_properties").Msg("scan failed")
		return nil, fmt.Errorf("reading property search results: %w", err)
	}
	return properties, nil
}

// Create inserts a property and returns it with its assigned id. Active is
// left to the column default.
func (r *PropertyRepository) Create(ctx context.Context, p model.Property) (*model.Property, error) {
	var created model.Property
	err := r.db.QueryRow(ctx,
		`INSERT INTO properties (
			owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+plainPropertyColumns,
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNight, p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
		p.Country, p.Street, p.City, p.Province, p.PostCode,
	).Scan(propertyFields(&created)...)
	if err != nil {
		r.log.Error().Err(err).Str("operation", "create_property").Int64("owner_id", p.OwnerID).Msg("insert failed")
		return nil, fmt.Errorf("creating property: %w", err)
	}
	return &created, nil
}
