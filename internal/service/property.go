package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

// PropertyService exposes property search and listing creation.
type PropertyService struct {
	server     *server.Server
	properties *repository.PropertyRepository
}

// NewPropertyService creates a PropertyService on top of the property repository.
func NewPropertyService(s *server.Server, properties *repository.PropertyRepository) *PropertyService {
	return &PropertyService{
		server:     s,
		properties: properties,
	}
}

// Search returns at most ten properties matching opts, cheapest first, each
// with its average review rating. Zero-valued filters are ignored.
func (s *PropertyService) Search(ctx context.Context, opts repository.PropertySearch) ([]model.RatedProperty, error) {
	return s.properties.Search(ctx, opts)
}

// Create stores a new listing. An unknown owner is reported by the
// properties_owner_id_fkey violation.
func (s *PropertyService) Create(ctx context.Context, p model.Property) (*model.Property, error) {
	created, err := s.properties.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Int64("property_id", created.ID).
		Int64("owner_id", created.OwnerID).
		Msg("property created")

	return created, nil
}
