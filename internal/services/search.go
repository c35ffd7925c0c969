package services

import (
	"strings"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
)

// MatchesQuery reports whether the free-text query matches the business.
// The match is a case-insensitive substring check over the localized name
// and the city; an empty query matches everything. This runs after the
// discovery query and is independent of the filter value.
func MatchesQuery(b models.Business, query string, locale models.Locale) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	name := strings.ToLower(b.LocalizedName(locale))
	city := strings.ToLower(b.City)
	return strings.Contains(name, query) || strings.Contains(city, query)
}

// FilterByQuery narrows an already-fetched result set by free-text query.
func FilterByQuery(businesses []models.Business, query string, locale models.Locale) []models.Business {
	if strings.TrimSpace(query) == "" {
		return businesses
	}
	matched := make([]models.Business, 0, len(businesses))
	for _, b := range businesses {
		if MatchesQuery(b, query, locale) {
			matched = append(matched, b)
		}
	}
	return matched
}
