package backend

import (
	"context"
	"fmt"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

// GetAllAddresses returns the caller's saved shipping addresses.
func (c *Client) GetAllAddresses(ctx context.Context) ([]domain.ShippingAddress, error) {
	var addresses []domain.ShippingAddress
	if err := c.get(ctx, "/address/get-all", &addresses); err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}
	return addresses, nil
}

// CreateAddress saves a new address. Used by the address-management screen,
// never by the checkout wizard.
func (c *Client) CreateAddress(ctx context.Context, addr *domain.ShippingAddress) (*domain.ShippingAddress, error) {
	var created domain.ShippingAddress
	if err := c.post(ctx, "/address/add", addr, &created); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return &created, nil
}

// UpdateAddress replaces a saved address.
func (c *Client) UpdateAddress(ctx context.Context, id string, addr *domain.ShippingAddress) (*domain.ShippingAddress, error) {
	var updated domain.ShippingAddress
	if err := c.put(ctx, "/address/"+id, addr, &updated); err != nil {
		return nil, fmt.Errorf("failed to update address %s: %w", id, err)
	}
	return &updated, nil
}

// DeleteAddress removes a saved address.
func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/address/"+id); err != nil {
		return fmt.Errorf("failed to delete address %s: %w", id, err)
	}
	return nil
}
