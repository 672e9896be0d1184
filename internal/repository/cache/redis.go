package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
)

const locatedSellersKey = "sellers:located"

// RedisCache implements caching for products and seller service areas
type RedisCache struct {
	client            *redis.Client
	locatedSellersTTL time.Duration
	productTTL        time.Duration
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, locatedSellersTTL, productTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:            client,
		locatedSellersTTL: locatedSellersTTL,
		productTTL:        productTTL,
	}
}

// Located sellers snapshot

// GetLocatedSellers retrieves the cached list of sellers with a service area
func (c *RedisCache) GetLocatedSellers(ctx context.Context) ([]*domain.Seller, error) {
	val, err := c.client.Get(ctx, locatedSellersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var sellers []*domain.Seller
	if err := json.Unmarshal(val, &sellers); err != nil {
		return nil, fmt.Errorf("failed to decode cached sellers: %w", err)
	}

	return sellers, nil
}

// SetLocatedSellers stores the located seller snapshot
func (c *RedisCache) SetLocatedSellers(ctx context.Context, sellers []*domain.Seller) error {
	data, err := json.Marshal(sellers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, locatedSellersKey, data, c.locatedSellersTTL).Err()
}

// InvalidateLocatedSellers drops the snapshot; the next read rebuilds it
func (c *RedisCache) InvalidateLocatedSellers(ctx context.Context) error {
	return c.client.Unlink(ctx, locatedSellersKey).Err()
}

// Product detail cache keys and methods

func (c *RedisCache) productKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s", productID.String())
}

// GetProduct retrieves a cached product
func (c *RedisCache) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	val, err := c.client.Get(ctx, c.productKey(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(val, &product); err != nil {
		return nil, fmt.Errorf("failed to decode cached product: %w", err)
	}

	return &product, nil
}

// SetProduct stores a product in cache
func (c *RedisCache) SetProduct(ctx context.Context, product *domain.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.productKey(product.ID), data, c.productTTL).Err()
}

// InvalidateProduct removes a product from cache
func (c *RedisCache) InvalidateProduct(ctx context.Context, productID uuid.UUID) error {
	err := c.client.Del(ctx, c.productKey(productID)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
