package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
)

func testCache(t *testing.T, ttl time.Duration) (*DiscoveryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewDiscoveryCache(rdb, ttl), mr
}

func TestDiscoveryCacheRoundtrip(t *testing.T) {
	c, _ := testCache(t, time.Minute)
	ctx := context.Background()

	filters := models.DefaultSearchFilters()
	businesses := []models.Business{
		{ID: "b1", Name: "Maya Salon", NameHe: "סלון מיה", Rating: 4.7, PriceRange: "₪60-₪120"},
	}

	_, ok := c.Get(ctx, filters)
	require.False(t, ok, "empty cache must miss")

	c.Set(ctx, filters, businesses)

	got, ok := c.Get(ctx, filters)
	require.True(t, ok)
	require.Equal(t, businesses, got)
}

func TestDiscoveryCacheKeyStability(t *testing.T) {
	a := models.SearchFilters{
		Location:     []string{"Tel Aviv", "Haifa"},
		BusinessType: models.BusinessTypeHair,
		PriceRange:   [2]float64{50, 150},
		Rating:       4.5,
		Availability: models.AvailabilityAny,
	}
	b := a
	b.Location = []string{"Haifa", "Tel Aviv"}

	require.Equal(t, Key(a), Key(b), "city order must not change the key")

	c := a
	c.Rating = 4.6
	require.NotEqual(t, Key(a), Key(c), "any field change must change the key")

	d := a
	d.PriceRange = [2]float64{50, 151}
	require.NotEqual(t, Key(a), Key(d))
}

func TestDiscoveryCacheExpiry(t *testing.T) {
	c, mr := testCache(t, time.Minute)
	ctx := context.Background()

	filters := models.DefaultSearchFilters()
	c.Set(ctx, filters, []models.Business{{ID: "b1"}})

	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, filters)
	require.False(t, ok, "expired entry must miss")
}

func TestDiscoveryCacheDegradesWhenRedisDown(t *testing.T) {
	c, mr := testCache(t, time.Minute)
	ctx := context.Background()
	mr.Close()

	_, ok := c.Get(ctx, models.DefaultSearchFilters())
	require.False(t, ok)

	// Must not panic or error out.
	c.Set(ctx, models.DefaultSearchFilters(), []models.Business{{ID: "b1"}})

	var nilCache *DiscoveryCache
	_, ok = nilCache.Get(ctx, models.DefaultSearchFilters())
	require.False(t, ok)
}
