package domain

// CartProduct is the product part of a cart line, as the backend returns it.
type CartProduct struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}

// CartItem is a single line in the authenticated user's cart.
type CartItem struct {
	ID       string      `json:"_id"`
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
	Price    float64     `json:"price"`
}

// Cart is the backend cart document: line items plus the backend-computed
// total. The wizard never recomputes the total client-side.
type Cart struct {
	ID          string     `json:"_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}
