package cache

import (
	"context"
	"time"

	"shelfwise/models"
)

// SearchCache holds recent supplier search results keyed by item name, so a
// repeated workflow run does not hit the search API again within the TTL.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]models.SupplierSearchResult, bool, error)
	Set(ctx context.Context, key string, value []models.SupplierSearchResult, ttl time.Duration) error
}

// NoopSearchCache is used when no Redis address is configured.
type NoopSearchCache struct{}

func (NoopSearchCache) Get(_ context.Context, _ string) ([]models.SupplierSearchResult, bool, error) {
	return nil, false, nil
}

func (NoopSearchCache) Set(_ context.Context, _ string, _ []models.SupplierSearchResult, _ time.Duration) error {
	return nil
}
