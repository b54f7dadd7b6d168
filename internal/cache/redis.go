package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 5 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisCache) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := r.getJSON(ctx, cartKey(userID), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r RedisCache) SetCart(ctx context.Context, userID string, cart *domain.Cart) error {
	return r.setJSON(ctx, cartKey(userID), cart)
}

func (r RedisCache) DeleteCart(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (r RedisCache) GetAddresses(ctx context.Context, userID string) ([]domain.ShippingAddress, error) {
	var addresses []domain.ShippingAddress
	if err := r.getJSON(ctx, addressKey(userID), &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r RedisCache) SetAddresses(ctx context.Context, userID string, addresses []domain.ShippingAddress) error {
	return r.setJSON(ctx, addressKey(userID), addresses)
}

func (r RedisCache) DeleteAddresses(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, addressKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (r RedisCache) getJSON(ctx context.Context, key string, out interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal cached value failed: %w", err)
	}
	return nil
}

func (r RedisCache) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cached value failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(60)) * time.Second
	if err := r.client.Set(ctx, key, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func addressKey(userID string) string {
	return fmt.Sprintf("addresses:%s", userID)
}
