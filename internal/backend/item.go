package backend

import (
	"context"
	"fmt"
)

// Item is a catalog product.
type Item struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
}

// GetAllItems lists the catalog.
func (c *Client) GetAllItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.get(ctx, "/item", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return items, nil
}

// GetItemByID returns a single catalog item.
func (c *Client) GetItemByID(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.get(ctx, "/item/"+id, &item); err != nil {
		return nil, fmt.Errorf("failed to fetch item %s: %w", id, err)
	}
	return &item, nil
}
