package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

// SearchPropertiesRequest carries the search filters from the query string.
// Omitted or zero filters are not applied.
type SearchPropertiesRequest struct {
	City                 string  `query:"city" validate:"max=255"`
	OwnerID              int64   `query:"owner_id" validate:"gte=0,lte=2147483647"`
	MinimumPricePerNight int64   `query:"minimum_price_per_night" validate:"gte=0,lte=2147483647"`
	MaximumPricePerNight int64   `query:"maximum_price_per_night" validate:"gte=0,lte=2147483647"`
	MinimumRating        float64 `query:"minimum_rating" validate:"gte=0,lte=5"`
}

func (r *SearchPropertiesRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.MinimumPricePerNight != 0 && r.MaximumPricePerNight != 0 &&
		r.MaximumPricePerNight < r.MinimumPricePerNight {
		return validation.CustomValidationErrors{{
			Field:   "maximum_price_per_night",
			Message: "must not be less than minimum_price_per_night",
		}}
	}
	return nil
}

// CreatePropertyRequest is the JSON body for creating a listing. Integer
// fields are capped at the range of the INTEGER columns they are stored in.
type CreatePropertyRequest struct {
	OwnerID           int64  `json:"owner_id" validate:"required,gt=0,lte=2147483647"`
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required,url,max=255"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"required,url,max=255"`
	CostPerNight      int64  `json:"cost_per_night" validate:"gte=0,lte=2147483647"`
	ParkingSpaces     int32  `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms" validate:"gte=0"`
	Country           string `json:"country" validate:"required,max=255"`
	Street            string `json:"street" validate:"required,max=255"`
	City              string `json:"city" validate:"required,max=255"`
	Province          string `json:"province" validate:"required,max=255"`
	PostCode          string `json:"post_code" validate:"required,max=255"`
}

func (r *CreatePropertyRequest) Validate() error {
	return validation.Struct(r)
}

type PropertiesResponse struct {
	Properties []model.RatedProperty `json:"properties"`
}

type PropertyResponse struct {
	Property *model.Property `json:"property"`
}

// PropertyHandler serves the /properties endpoints.
type PropertyHandler struct {
	Handler
	properties *service.PropertyService
}

func NewPropertyHandler(s *server.Server, properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		Handler:    NewHandler(s),
		properties: properties,
	}
}

// Search handles GET /api/v1/properties.
func (h *PropertyHandler) Search(c echo.Context, req *SearchPropertiesRequest) (*PropertiesResponse, error) {
	properties, err := h.properties.Search(c.Request().Context(), repository.PropertySearch{
		City:                 req.City,
		OwnerID:              req.OwnerID,
		MinimumPricePerNight: req.MinimumPricePerNight,
		MaximumPricePerNight: req.MaximumPricePerNight,
		MinimumRating:        req.MinimumRating,
	})
	if err != nil {
		return nil, err
	}
	return &PropertiesResponse{Properties: properties}, nil
}

// Create handles POST /api/v1/properties and responds 201 with the stored listing.
func (h *PropertyHandler) Create(c echo.Context, req *CreatePropertyRequest) (*PropertyResponse, error) {
	property, err := h.properties.Create(c.Request().Context(), model.Property{
		OwnerID:           req.OwnerID,
		Title:             req.Title,
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		Country:           req.Country,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
	})
	if err != nil {
		return nil, err
	}
	return &PropertyResponse{Property: property}, nil
}
