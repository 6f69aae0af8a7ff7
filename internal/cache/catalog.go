package cache

import (
	"context"
	"encoding/json"
	"time"

	"engistore/internal/model"

	"github.com/redis/go-redis/v9"
)

const productTTL = 5 * time.Minute

// CatalogCache is a read-through cache for product lookups. A nil client
// disables caching entirely.
type CatalogCache struct {
	rdb *redis.Client
}

func NewCatalogCache(rdb *redis.Client) *CatalogCache {
	return &CatalogCache{rdb: rdb}
}

func productKey(slug string) string {
	return "product:slug:" + slug
}

func (c *CatalogCache) GetProduct(ctx context.Context, slug string) (*model.Product, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, productKey(slug)).Bytes()
	if err != nil {
		return nil, false
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false
	}

	return &product, true
}

func (c *CatalogCache) SetProduct(ctx context.Context, product *model.Product) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, productKey(product.Slug), data, productTTL).Err()
}

func (c *CatalogCache) InvalidateProduct(ctx context.Context, slug string) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	return c.rdb.Del(ctx, productKey(slug)).Err()
}
