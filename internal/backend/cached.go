package backend

import (
	"context"
	"errors"
	"log"

	"github.com/LahiruMudith/mack-trading-fn/internal/cache"
	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

// CachedReader fronts the backend client with a read cache for the two
// fetches every checkout mount repeats: the saved-address list and the
// cart document. Cache failures are never fatal; calls fall through to the
// backend.
type CachedReader struct {
	client  *Client
	cache   cache.StoreCache
	userKey string
}

func NewCachedReader(client *Client, store cache.StoreCache, userKey string) *CachedReader {
	return &CachedReader{client: client, cache: store, userKey: userKey}
}

func (r *CachedReader) GetAllAddresses(ctx context.Context) ([]domain.ShippingAddress, error) {
	if addresses, err := r.cache.GetAddresses(ctx, r.userKey); err == nil {
		return addresses, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("address cache read failed: %v", err)
	}

	addresses, err := r.client.GetAllAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetAddresses(ctx, r.userKey, addresses); err != nil {
		log.Printf("address cache write failed: %v", err)
	}
	return addresses, nil
}

func (r *CachedReader) GetCart(ctx context.Context) (*domain.Cart, error) {
	if cart, err := r.cache.GetCart(ctx, r.userKey); err == nil {
		return cart, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("cart cache read failed: %v", err)
	}

	cart, err := r.client.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetCart(ctx, r.userKey, cart); err != nil {
		log.Printf("cart cache write failed: %v", err)
	}
	return cart, nil
}

// PlaceOrder delegates to the backend and drops the cached cart: the
// backend empties the cart once an order exists for it.
func (r *CachedReader) PlaceOrder(ctx context.Context, addressID string) (*domain.PendingOrder, error) {
	pending, err := r.client.PlaceOrder(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if err := r.cache.DeleteCart(ctx, r.userKey); err != nil {
		log.Printf("cart cache invalidation failed: %v", err)
	}
	return pending, nil
}
