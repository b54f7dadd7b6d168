package domain

// PayHereParams is the gateway parameter bag returned by the backend when
// an order is placed. The hash is computed server-side and must be passed
// through untouched; the client never regenerates it.
type PayHereParams struct {
	MerchantID string `json:"merchant_id"`
	OrderID    string `json:"order_id"`
	Hash       string `json:"hash"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Items      string `json:"items"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	NotifyURL  string `json:"notify_url"`
}

// PendingOrder is a server-created order awaiting payment confirmation.
type PendingOrder struct {
	OrderID string
	Params  PayHereParams
}

// OrderLineItem is one purchased item in the order history view.
type OrderLineItem struct {
	Item struct {
		ID    string  `json:"_id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	} `json:"item"`
	Qty int `json:"qty"`
}

// Order is a placed order as the backend reports it.
type Order struct {
	ID             string          `json:"_id"`
	TrackingNumber string          `json:"tracking_number"`
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	TotalAmount    float64         `json:"totalAmount"`
	Items          []OrderLineItem `json:"items"`
	EstDelivery    string          `json:"est_delivery"`
}
