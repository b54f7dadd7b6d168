package http

import (
	"context"
	"net/http"
	"time"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

// OrderHistory is the backend surface the handler needs.
type OrderHistory interface {
	GetMyOrders(ctx context.Context) ([]domain.Order, error)
}

type OrdersHandler struct {
	orders  OrderHistory
	timeout time.Duration
}

func NewOrdersHandler(orders OrderHistory, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{orders: orders, timeout: timeout}
}

type OrderItemDTO struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}

type OrderResponseDTO struct {
	ID             string         `json:"id"`
	TrackingNumber string         `json:"tracking_number"`
	Date           string         `json:"date"`
	Status         string         `json:"status"`
	TotalAmount    float64        `json:"total_amount"`
	Items          []OrderItemDTO `json:"items"`
	EstDelivery    string         `json:"est_delivery"`
}

// GET /api/v1/orders
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.orders.GetMyOrders(ctx)
	if err != nil {
		handleWizardError(w, err)
		return
	}

	response := make([]OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		dto := OrderResponseDTO{
			ID:             order.ID,
			TrackingNumber: order.TrackingNumber,
			Date:           order.Date,
			Status:         order.Status,
			TotalAmount:    order.TotalAmount,
			EstDelivery:    order.EstDelivery,
			Items:          make([]OrderItemDTO, 0, len(order.Items)),
		}
		for _, line := range order.Items {
			dto.Items = append(dto.Items, OrderItemDTO{
				ItemID: line.Item.ID,
				Name:   line.Item.Name,
				Price:  line.Item.Price,
				Qty:    line.Qty,
			})
		}
		response = append(response, dto)
	}

	respondJSON(w, http.StatusOK, response)
}
