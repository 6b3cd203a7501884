package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// PropertySearchLimit caps every search result, whatever the caller asks for.
const PropertySearchLimit = 10

// PropertySearch is the filter-options record for property search.
// A zero field means the filter is absent.
type PropertySearch struct {
	City                 string
	OwnerID              int64
	MinimumPricePerNight int64
	MaximumPricePerNight int64
	MinimumRating        float64
}

// searchStatement accumulates positional arguments and the WHERE clauses
// that reference them. A placeholder's index is always the length of args
// right after its value is appended, so numbering stays dense and ordered no
// matter which filters are present.
type searchStatement struct {
	args    []any
	clauses []string
}

// bind appends v and returns its placeholder.
func (s *searchStatement) bind(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

// where records a clause; format must contain exactly one %s for the placeholder.
func (s *searchStatement) where(format string, v any) {
	s.clauses = append(s.clauses, fmt.Sprintf(format, s.bind(v)))
}

// buildPropertySearch assembles the search statement and its arguments.
//
// WHERE filters are applied in a fixed order (city, owner, minimum price,
// maximum price). The rating filter works on the aggregate, so it is bound
// last and emitted as HAVING after GROUP BY.
func buildPropertySearch(opts PropertySearch) (string, []any) {
	st := &searchStatement{}

	if opts.City != "" {
		st.where("properties.city LIKE %s", "%"+opts.City+"%")
	}
	if opts.OwnerID != 0 {
		st.where("properties.owner_id = %s", opts.OwnerID)
	}
	if opts.MinimumPricePerNight != 0 {
		st.where("properties.cost_per_night > %s", opts.MinimumPricePerNight)
	}
	if opts.MaximumPricePerNight != 0 {
		st.where("properties.cost_per_night < %s", opts.MaximumPricePerNight)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(qualifiedPropertyColumns)
	sb.WriteString(", AVG(property_reviews.rating) AS average_rating\n")
	sb.WriteString("FROM properties\n")
	sb.WriteString("JOIN property_reviews ON properties.id = property_reviews.property_id\n")

	if len(st.clauses) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(st.clauses, " AND "))
		sb.WriteString("\n")
	}

	sb.WriteString("GROUP BY properties.id\n")

	if opts.MinimumRating != 0 {
		sb.WriteString("HAVING AVG(property_reviews.rating) > ")
		sb.WriteString(st.bind(opts.MinimumRating))
		sb.WriteString("\n")
	}

	sb.WriteString("ORDER BY properties.cost_per_night\n")
	sb.WriteString("LIMIT " + strconv.Itoa(PropertySearchLimit))

	return sb.String(), st.args
}
