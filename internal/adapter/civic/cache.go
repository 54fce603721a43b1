package civic

import (
	"context"
	"fmt"

	"github.com/couchcryptid/event-manager/internal/domain"
	"github.com/couchcryptid/event-manager/internal/observability"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedLookup wraps a RepresentativeLookup with an in-memory LRU cache keyed
// by zipcode. Rosters repeat zipcodes, so most attendees never reach the API.
type CachedLookup struct {
	inner   domain.RepresentativeLookup
	cache   *lru.Cache[string, []domain.Official]
	metrics *observability.Metrics
}

// NewCachedLookup creates a cache decorator holding at most maxEntries zipcodes.
func NewCachedLookup(inner domain.RepresentativeLookup, maxEntries int, metrics *observability.Metrics) (*CachedLookup, error) {
	cache, err := lru.New[string, []domain.Official](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}
	return &CachedLookup{inner: inner, cache: cache, metrics: metrics}, nil
}

func (c *CachedLookup) LegislatorsByZipcode(ctx context.Context, zipcode string) ([]domain.Official, error) {
	if officials, ok := c.cache.Get(zipcode); ok {
		c.metrics.LookupCache.WithLabelValues("hit").Inc()
		return officials, nil
	}
	c.metrics.LookupCache.WithLabelValues("miss").Inc()

	officials, err := c.inner.LegislatorsByZipcode(ctx, zipcode)
	if err != nil {
		// Failures are not cached so a later attendee with the same zipcode retries.
		return nil, err
	}
	c.cache.Add(zipcode, officials)
	return officials, nil
}

// Len returns the number of cached zipcodes.
func (c *CachedLookup) Len() int {
	return c.cache.Len()
}
