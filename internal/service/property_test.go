package service

import (
	"context"
	"testing"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyRowColumns = []string{
	"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
	"cost_per_night", "parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
	"country", "street", "city", "province", "post_code", "active",
}

func propertyRow(id int64, city string) []any {
	return []any{
		id, int64(2), "Blank corner", "", "thumb.jpg", "cover.jpg",
		int64(8500), int32(1), int32(1), int32(2),
		"Canada", "651 Nami Road", city, "Ontario", "92150", true,
	}
}

func TestPropertySearchPassesFilters(t *testing.T) {
	s := newTestServer()
	mock := newMockPool(t)
	svc := NewPropertyService(s, repository.NewPropertyRepository(mock, s.Logger))

	mock.ExpectQuery(`WHERE properties.owner_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(append(append([]string{}, propertyRowColumns...), "average_rating")).
			AddRow(append(propertyRow(5, "Toronto"), 3.8)...))

	results, err := svc.Search(context.Background(), repository.PropertySearch{OwnerID: 2})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 3.8, results[0].AverageRating)
}

func TestPropertyCreate(t *testing.T) {
	s := newTestServer()
	mock := newMockPool(t)
	svc := NewPropertyService(s, repository.NewPropertyRepository(mock, s.Logger))

	mock.ExpectQuery(`INSERT INTO properties`).
		WithArgs(
			int64(2), "Blank corner", "", "thumb.jpg", "cover.jpg",
			int64(8500), int32(1), int32(1), int32(2),
			"Canada", "651 Nami Road", "Toronto", "Ontario", "92150",
		).
		WillReturnRows(pgxmock.NewRows(propertyRowColumns).AddRow(propertyRow(77, "Toronto")...))

	created, err := svc.Create(context.Background(), model.Property{
		OwnerID:           2,
		Title:             "Blank corner",
		ThumbnailPhotoURL: "thumb.jpg",
		CoverPhotoURL:     "cover.jpg",
		CostPerNight:      8500,
		ParkingSpaces:     1,
		NumberOfBathrooms: 1,
		NumberOfBedrooms:  2,
		Country:           "Canada",
		Street:            "651 Nami Road",
		City:              "Toronto",
		Province:          "Ontario",
		PostCode:          "92150",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)
	assert.True(t, created.Active)
}

func TestReservationListForGuest(t *testing.T) {
	s := newTestServer()
	mock := newMockPool(t)
	svc := NewReservationService(s, repository.NewReservationRepository(mock, s.Logger))

	mock.ExpectQuery(`WHERE reservations.guest_id = \$1`).
		WithArgs(int64(1), repository.DefaultReservationLimit).
		WillReturnRows(pgxmock.NewRows(propertyRowColumns).AddRow(propertyRow(5, "Toronto")...))

	properties, err := svc.ListForGuest(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Toronto", properties[0].City)
}
