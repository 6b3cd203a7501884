package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyRowValues(id int64, city string, cost int64) []any {
	return []any{
		id, int64(1), "Speed lamp", "description", "https://images.example/thumb.jpg", "https://images.example/cover.jpg",
		cost, int32(6), int32(4), int32(8),
		"Canada", "536 Namsub Highway", city, "Quebec", "28142", true,
	}
}

func TestPropertySearch(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPropertyRepository(mock, nopLogger())

	opts := PropertySearch{City: "Vancouver", MinimumRating: 4}
	query, _ := buildPropertySearch(opts)

	columns := append(append([]string{}, propertyColumns...), "average_rating")
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("%Vancouver%", float64(4)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(append(propertyRowValues(12, "Vancouver", 9300), 4.5)...).
			AddRow(append(propertyRowValues(31, "North Vancouver", 12500), 4.25)...))

	properties, err := repo.Search(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, properties, 2)

	assert.Equal(t, int64(12), properties[0].ID)
	assert.Equal(t, 4.5, properties[0].AverageRating)
	assert.Equal(t, int32(8), properties[0].NumberOfBedrooms)
	assert.Equal(t, "North Vancouver", properties[1].City)
	assert.True(t, properties[1].Active)
}

func TestPropertySearchEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPropertyRepository(mock, nopLogger())

	columns := append(append([]string{}, propertyColumns...), "average_rating")
	mock.ExpectQuery(`FROM properties`).
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(columns))

	properties, err := repo.Search(context.Background(), PropertySearch{OwnerID: 999})
	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestPropertySearchQueryFailure(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPropertyRepository(mock, nopLogger())

	boom := errors.New("relation \"properties\" does not exist")
	mock.ExpectQuery(`FROM properties`).WillReturnError(boom)

	properties, err := repo.Search(context.Background(), PropertySearch{})
	assert.Nil(t, properties)
	assert.ErrorIs(t, err, boom)
}

func TestPropertyCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPropertyRepository(mock, nopLogger())

	in := model.Property{
		OwnerID:           1,
		Title:             "Speed lamp",
		Description:       "description",
		ThumbnailPhotoURL: "https://images.example/thumb.jpg",
		CoverPhotoURL:     "https://images.example/cover.jpg",
		CostPerNight:      9300,
		ParkingSpaces:     6,
		NumberOfBathrooms: 4,
		NumberOfBedrooms:  8,
		Country:           "Canada",
		Street:            "536 Namsub Highway",
		City:              "Sotboske",
		Province:          "Quebec",
		PostCode:          "28142",
	}

	mock.ExpectQuery(`INSERT INTO properties[\s\S]+VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, \$9, \$10, \$11, \$12, \$13, \$14\)\s+RETURNING id, owner_id`).
		WithArgs(
			in.OwnerID, in.Title, in.Description, in.ThumbnailPhotoURL, in.CoverPhotoURL,
			in.CostPerNight, in.ParkingSpaces, in.NumberOfBathrooms, in.NumberOfBedrooms,
			in.Country, in.Street, in.City, in.Province, in.PostCode,
		).
		WillReturnRows(pgxmock.NewRows(propertyColumns).
			AddRow(propertyRowValues(1001, "Sotboske", 9300)...))

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	want := in
	want.ID = 1001
	want.Active = true
	assert.Equal(t, want, *created)
}
