package cache

import (
	"context"
	"errors"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

// StoreCache caches backend reads the wizard repeats on every mount:
// the cart document and the saved-address list, keyed by user.
type StoreCache interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	SetCart(ctx context.Context, userID string, cart *domain.Cart) error
	DeleteCart(ctx context.Context, userID string) error

	GetAddresses(ctx context.Context, userID string) ([]domain.ShippingAddress, error)
	SetAddresses(ctx context.Context, userID string, addresses []domain.ShippingAddress) error
	DeleteAddresses(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
