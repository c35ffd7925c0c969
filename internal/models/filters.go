package models

import (
	"fmt"
	"sort"
	"strings"
)

// LocationAll is the sentinel city meaning "no city constraint".
const LocationAll = "All"

// Business type values accepted by SearchFilters.BusinessType.
const (
	BusinessTypeAll    = "all"
	BusinessTypeHair   = "hair_salon"
	BusinessTypeBeauty = "beauty_salon"
	BusinessTypeNails  = "nail_studio"
)

// Availability windows. Accepted in the filter shape but not yet applied to
// real scheduling data; kept so the contract is stable for every filter UI.
const (
	AvailabilityAny      = "any"
	AvailabilityToday    = "today"
	AvailabilityThisWeek = "this_week"
)

// WidePriceRange is the upper price bound used by the wide page variant.
var WidePriceRange = [2]float64{30, 500}

// SearchFilters is the shared contract between every filter UI and the
// discovery pipeline. It is owned by the caller and recreated per session.
type SearchFilters struct {
	Location     []string   `json:"location"`
	BusinessType string     `json:"business_type"`
	PriceRange   [2]float64 `json:"price_range"`
	Rating       float64    `json:"rating"`
	Availability string     `json:"availability"`
}

// DefaultSearchFilters returns the documented defaults a "clear filters"
// action resets to.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		Location:     []string{LocationAll},
		BusinessType: BusinessTypeAll,
		PriceRange:   [2]float64{30, 300},
		Rating:       4.0,
		Availability: AvailabilityAny,
	}
}

// Validate reports the first violated constraint of the filter shape.
func (f SearchFilters) Validate() error {
	switch f.BusinessType {
	case BusinessTypeAll, BusinessTypeHair, BusinessTypeBeauty, BusinessTypeNails:
	default:
		return fmt.Errorf("%w: business_type %q", ErrInvalidFilters, f.BusinessType)
	}
	switch f.Availability {
	case AvailabilityAny, AvailabilityToday, AvailabilityThisWeek:
	default:
		return fmt.Errorf("%w: availability %q", ErrInvalidFilters, f.Availability)
	}
	if f.PriceRange[0] > f.PriceRange[1] {
		return fmt.Errorf("%w: price_range [%v,%v]", ErrInvalidFilters, f.PriceRange[0], f.PriceRange[1])
	}
	if f.Rating < 0 || f.Rating > 5 {
		return fmt.Errorf("%w: rating %v", ErrInvalidFilters, f.Rating)
	}
	return nil
}

// UnconstrainedLocation reports whether the location set carries the
// "All" sentinel (or is empty), meaning no city predicate is applied.
func (f SearchFilters) UnconstrainedLocation() bool {
	if len(f.Location) == 0 {
		return true
	}
	for _, city := range f.Location {
		if strings.EqualFold(city, LocationAll) {
			return true
		}
	}
	return false
}

// Normalized returns a copy with a stable field order, suitable as a cache
// key: empty fields replaced by defaults, city list deduplicated and sorted.
func (f SearchFilters) Normalized() SearchFilters {
	out := f
	if out.BusinessType == "" {
		out.BusinessType = BusinessTypeAll
	}
	if out.Availability == "" {
		out.Availability = AvailabilityAny
	}
	if out.UnconstrainedLocation() {
		out.Location = []string{LocationAll}
		return out
	}
	seen := make(map[string]struct{}, len(out.Location))
	cities := make([]string, 0, len(out.Location))
	for _, city := range out.Location {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	sort.Strings(cities)
	out.Location = cities
	return out
}
