package backend

import (
	"context"
	"fmt"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

// GetCart returns the authenticated user's cart document, including the
// backend-computed total amount.
func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.get(ctx, "/cart/", &cart); err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return &cart, nil
}

// AddCartItem puts a product into the cart.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) (*domain.Cart, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	var cart domain.Cart
	if err := c.post(ctx, "/cart/add", body, &cart); err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}
	return &cart, nil
}

// UpdateCartItem changes a cart line's quantity.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*domain.Cart, error) {
	body := map[string]interface{}{"quantity": quantity}
	var cart domain.Cart
	if err := c.put(ctx, "/cart/"+itemID, body, &cart); err != nil {
		return nil, fmt.Errorf("failed to update cart item %s: %w", itemID, err)
	}
	return &cart, nil
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	if err := c.delete(ctx, "/cart/"+itemID); err != nil {
		return fmt.Errorf("failed to remove cart item %s: %w", itemID, err)
	}
	return nil
}
