package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/Ross563/e-commerse-store/models"
)

const featuredProductsKey = "featured_products"

// Client wraps the redis connection used for the featured-products snapshot.
// It is the only cache consumer in the system; the snapshot has no TTL and is
// refreshed manually whenever a product's featured flag is toggled.
type Client struct {
	rdb *redis.Client
}

func New(addr, password string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: rdb}, nil
}

// GetFeaturedProducts returns the cached snapshot, or (nil, nil) on a miss.
func (c *Client) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := c.rdb.Get(ctx, featuredProductsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) SetFeaturedProducts(ctx context.Context, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, featuredProductsKey, raw, 0).Err()
}
