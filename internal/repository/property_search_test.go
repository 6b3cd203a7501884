package repository

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

func TestBuildPropertySearchNoFilters(t *testing.T) {
	query, args := buildPropertySearch(PropertySearch{})

	want := "SELECT " + qualifiedPropertyColumns + ", AVG(property_reviews.rating) AS average_rating\n" +
		"FROM properties\n" +
		"JOIN property_reviews ON properties.id = property_reviews.property_id\n" +
		"GROUP BY properties.id\n" +
		"ORDER BY properties.cost_per_night\n" +
		"LIMIT 10"

	assert.Equal(t, want, query)
	assert.Empty(t, args)
}

func TestBuildPropertySearchCityOnly(t *testing.T) {
	query, args := buildPropertySearch(PropertySearch{City: "Vancouver"})

	assert.Contains(t, query, "WHERE properties.city LIKE $1\nGROUP BY properties.id\n")
	assert.NotContains(t, query, "HAVING")
	assert.Equal(t, []any{"%Vancouver%"}, args)
}

func TestBuildPropertySearchRatingOnly(t *testing.T) {
	query, args := buildPropertySearch(PropertySearch{MinimumRating: 4})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "GROUP BY properties.id\nHAVING AVG(property_reviews.rating) > $1\nORDER BY")
	assert.Equal(t, []any{float64(4)}, args)
}

func TestBuildPropertySearchAllFilters(t *testing.T) {
	query, args := buildPropertySearch(PropertySearch{
		City:                 "Van",
		OwnerID:              7,
		MinimumPricePerNight: 1000,
		MaximumPricePerNight: 50000,
		MinimumRating:        3.5,
	})

	assert.Contains(t, query,
		"WHERE properties.city LIKE $1 AND properties.owner_id = $2 AND "+
			"properties.cost_per_night > $3 AND properties.cost_per_night < $4\n")
	assert.Contains(t, query, "HAVING AVG(property_reviews.rating) > $5\n")
	assert.Equal(t, []any{"%Van%", int64(7), int64(1000), int64(50000), 3.5}, args)
}

func TestBuildPropertySearchPriceRange(t *testing.T) {
	query, args := buildPropertySearch(PropertySearch{
		MinimumPricePerNight: 2000,
		MaximumPricePerNight: 3000,
	})

	assert.Contains(t, query, "WHERE properties.cost_per_night > $1 AND properties.cost_per_night < $2\n")
	assert.Equal(t, []any{int64(2000), int64(3000)}, args)
}

// Every combination of present filters must yield dense placeholders that
// line up with the argument list, and the statement shape must not change.
func TestBuildPropertySearchEveryCombination(t *testing.T) {
	full := PropertySearch{
		City:                 "Calgary",
		OwnerID:              3,
		MinimumPricePerNight: 100,
		MaximumPricePerNight: 900,
		MinimumRating:        2,
	}

	for mask := 0; mask < 1<<5; mask++ {
		var opts PropertySearch
		var present []string
		if mask&1 != 0 {
			opts.City = full.City
			present = append(present, "city")
		}
		if mask&2 != 0 {
			opts.OwnerID = full.OwnerID
			present = append(present, "owner")
		}
		if mask&4 != 0 {
			opts.MinimumPricePerNight = full.MinimumPricePerNight
			present = append(present, "min")
		}
		if mask&8 != 0 {
			opts.MaximumPricePerNight = full.MaximumPricePerNight
			present = append(present, "max")
		}
		if mask&16 != 0 {
			opts.MinimumRating = full.MinimumRating
			present = append(present, "rating")
		}

		t.Run(fmt.Sprintf("filters=%s", strings.Join(present, "+")), func(t *testing.T) {
			query, args := buildPropertySearch(opts)

			require.Len(t, args, len(present))

			matches := placeholderPattern.FindAllStringSubmatch(query, -1)
			require.Len(t, matches, len(args))
			for i, m := range matches {
				n, err := strconv.Atoi(m[1])
				require.NoError(t, err)
				assert.Equal(t, i+1, n, "placeholders must appear in ascending order")
			}

			whereFilters := len(present)
			if opts.MinimumRating != 0 {
				whereFilters--
				assert.Contains(t, query, "HAVING AVG(property_reviews.rating) > $"+strconv.Itoa(len(args))+"\n")
				assert.Equal(t, opts.MinimumRating, args[len(args)-1])
			} else {
				assert.NotContains(t, query, "HAVING")
			}

			if whereFilters == 0 {
				assert.NotContains(t, query, "WHERE")
			} else {
				assert.Equal(t, 1, strings.Count(query, "WHERE "))
				assert.Equal(t, whereFilters-1, strings.Count(query, " AND "))
			}

			assert.True(t, strings.HasPrefix(query, "SELECT properties.id, "))
			assert.Contains(t, query, "GROUP BY properties.id\n")
			assert.True(t, strings.HasSuffix(query, "ORDER BY properties.cost_per_night\nLIMIT 10"))
		})
	}
}

func TestBuildPropertySearchDoesNotInlineValues(t *testing.T) {
	query, _ := buildPropertySearch(PropertySearch{City: "'; DROP TABLE users; --"})

	assert.NotContains(t, query, "DROP TABLE")
}
