package services

import (
	"context"
	"strconv"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
)

// Fallback price interval used for post-filtering a business with no active
// services, and the matching display label. The two deliberately disagree:
// the label promises the entry price band while the interval keeps such
// businesses visible across most budgets.
const (
	fallbackMinPrice = 50
	fallbackMaxPrice = 200

	fallbackPriceLabel = "₪50-₪100"
)

// BusinessFetcher is the store read surface the discovery pipeline consumes.
type BusinessFetcher interface {
	FetchVerified(ctx context.Context, filters models.SearchFilters) ([]models.Business, error)
	GetBusinessByID(ctx context.Context, id string) (models.Business, error)
}

// ResultCache keeps derived discovery results keyed by the filter value.
type ResultCache interface {
	Get(ctx context.Context, filters models.SearchFilters) ([]models.Business, bool)
	Set(ctx context.Context, filters models.SearchFilters, businesses []models.Business)
}

// DiscoveryService produces the candidate business list for a filter value:
// one store read, then in-process derivation and price/rating post-filters
// that the store query cannot express.
type DiscoveryService struct {
	Repo    BusinessFetcher
	Cache   ResultCache
	Scoring ScoringProvider
}

// Discover returns derived, post-filtered businesses for the filters.
// Identical filter values hit the cache and perform no second store read;
// fetch errors propagate to the caller unmodified, with no retry.
func (s *DiscoveryService) Discover(ctx context.Context, filters models.SearchFilters) ([]models.Business, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	filters = filters.Normalized()

	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, filters); ok {
			return cached, nil
		}
	}

	fetched, err := s.Repo.FetchVerified(ctx, filters)
	if err != nil {
		return nil, err
	}

	businesses := make([]models.Business, 0, len(fetched))
	for _, b := range fetched {
		derived, keep := s.derive(ctx, b, filters)
		if keep {
			businesses = append(businesses, derived)
		}
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, filters, businesses)
	}
	return businesses, nil
}

// GetBusiness returns a single business with derived presentation fields.
// Unlike Discover it applies no filters; the profile page shows the listing
// regardless of the current search constraints.
func (s *DiscoveryService) GetBusiness(ctx context.Context, id string) (models.Business, error) {
	b, err := s.Repo.GetBusinessByID(ctx, id)
	if err != nil {
		return models.Business{}, err
	}
	derived, _ := s.derive(ctx, b, models.SearchFilters{})
	return derived, nil
}

// derive computes the runtime fields for one business and applies the
// price-overlap and minimum-rating post-filters. The price check is
// boundary-inclusive on both ends.
func (s *DiscoveryService) derive(ctx context.Context, b models.Business, filters models.SearchFilters) (models.Business, bool) {
	b.MinPrice, b.MaxPrice = priceBounds(b.Services)

	if filters.PriceRange[1] > 0 {
		if b.MinPrice > filters.PriceRange[1] || b.MaxPrice < filters.PriceRange[0] {
			return models.Business{}, false
		}
	}

	score := s.Scoring.Score(ctx, b)
	if score.Rating < filters.Rating {
		return models.Business{}, false
	}

	b.Rating = score.Rating
	b.ReviewCount = score.ReviewCount
	b.IsAvailableToday = score.AvailableToday
	b.PriceRange = priceRangeLabel(b.Services)
	b.PhotoURL = PhotoForType(b.Type)
	return b, true
}

func priceBounds(services []models.Service) (float64, float64) {
	if len(services) == 0 {
		return fallbackMinPrice, fallbackMaxPrice
	}
	min, max := services[0].Price, services[0].Price
	for _, svc := range services[1:] {
		if svc.Price < min {
			min = svc.Price
		}
		if svc.Price > max {
			max = svc.Price
		}
	}
	return min, max
}

func priceRangeLabel(services []models.Service) string {
	if len(services) == 0 {
		return fallbackPriceLabel
	}
	min, max := priceBounds(services)
	return "₪" + formatPrice(min) + "-₪" + formatPrice(max)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
