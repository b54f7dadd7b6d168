package backend

import (
	"context"
	"fmt"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

type placeOrderRequest struct {
	AddressID string `json:"address_id"`
}

type placeOrderResponse struct {
	PayhereData domain.PayHereParams `json:"payhere_data"`
}

// PlaceOrder creates a pending order for the given saved address and
// returns the gateway parameters the backend computed for it. The hash
// inside is opaque to us.
func (c *Client) PlaceOrder(ctx context.Context, addressID string) (*domain.PendingOrder, error) {
	var resp placeOrderResponse
	if err := c.post(ctx, "/order/place", placeOrderRequest{AddressID: addressID}, &resp); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	return &domain.PendingOrder{
		OrderID: resp.PayhereData.OrderID,
		Params:  resp.PayhereData,
	}, nil
}

// GetMyOrders returns the caller's order history.
func (c *Client) GetMyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/order/get-all", &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
