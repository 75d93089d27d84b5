package productcache

import (
	"context"
	"sync"
	"time"

	"rackline/internal/domain/entity"
)

// allProductsKey is the cache key for the full-catalog fetch.
const allProductsKey = "all-products"

// fullCatalogLimit matches the storefront's "effectively unbounded"
// page request.
const fullCatalogLimit = 100000

// Fetcher is the slice of the upstream client the cache needs.
type Fetcher interface {
	FetchProducts(ctx context.Context, limit, offset int) ([]entity.Product, int64, error)
	FetchProduct(ctx context.Context, idOrSKU string) (*entity.Product, error)
}

type cacheEntry struct {
	products  []entity.Product
	product   *entity.Product
	timestamp time.Time
}

// Cache is a read-through TTL cache over the upstream catalog. A hit
// within the TTL returns the cached value without a network call; a
// fetch failure surfaces to the caller with no stale fallback.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry

	now func() time.Time
}

func New(fetcher Fetcher, ttl time.Duration) *Cache {
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) fresh(key string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return cacheEntry{}, false
	}
	if c.now().Sub(entry.timestamp) >= c.ttl {
		return cacheEntry{}, false
	}
	return entry, true
}

func (c *Cache) store(key string, entry cacheEntry) {
	entry.timestamp = c.now()
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// Products returns the full catalog, fetching it upstream on a miss.
func (c *Cache) Products(ctx context.Context) ([]entity.Product, error) {
	if entry, ok := c.fresh(allProductsKey); ok {
		return entry.products, nil
	}

	products, _, err := c.fetcher.FetchProducts(ctx, fullCatalogLimit, 0)
	if err != nil {
		return nil, err
	}
	c.store(allProductsKey, cacheEntry{products: products})
	return products, nil
}

// Product returns one product by id or SKU.
func (c *Cache) Product(ctx context.Context, idOrSKU string) (*entity.Product, error) {
	if entry, ok := c.fresh(idOrSKU); ok {
		return entry.product, nil
	}

	product, err := c.fetcher.FetchProduct(ctx, idOrSKU)
	if err != nil {
		return nil, err
	}
	c.store(idOrSKU, cacheEntry{product: product})
	return product, nil
}

// Refresh re-runs the fetch path for an identifier (or the full catalog
// when identifier is empty), overwriting the entry on success. A reader
// during the refresh window still sees the old value until the new
// write lands; this is a forced bypass, not an invalidation.
func (c *Cache) Refresh(ctx context.Context, identifier string) error {
	if identifier == "" {
		products, _, err := c.fetcher.FetchProducts(ctx, fullCatalogLimit, 0)
		if err != nil {
			return err
		}
		c.store(allProductsKey, cacheEntry{products: products})
		return nil
	}

	product, err := c.fetcher.FetchProduct(ctx, identifier)
	if err != nil {
		return err
	}
	c.store(identifier, cacheEntry{product: product})
	return nil
}
