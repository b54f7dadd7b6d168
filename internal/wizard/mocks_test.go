package wizard

import (
	"context"
	"fmt"
	"sync"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

// MockAddressProvider implements AddressProvider for testing
type MockAddressProvider struct {
	Addresses []domain.ShippingAddress
	Err       error
	Gate      chan struct{} // when non-nil, the fetch blocks until the gate closes
}

func (m *MockAddressProvider) GetAllAddresses(ctx context.Context) ([]domain.ShippingAddress, error) {
	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Addresses, nil
}

// MockCartProvider implements CartProvider for testing
type MockCartProvider struct {
	Cart *domain.Cart
	Err  error
}

func (m *MockCartProvider) GetCart(ctx context.Context) (*domain.Cart, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Cart, nil
}

// MockOrderInitiator implements OrderInitiator and records every call.
type MockOrderInitiator struct {
	mu        sync.Mutex
	Err       error
	CallCount int
	Calls     []string // address ids passed to PlaceOrder
}

func (m *MockOrderInitiator) PlaceOrder(ctx context.Context, addressID string) (*domain.PendingOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	m.CallCount++
	m.Calls = append(m.Calls, addressID)

	orderID := fmt.Sprintf("ORD-%d", m.CallCount)
	return &domain.PendingOrder{
		OrderID: orderID,
		Params: domain.PayHereParams{
			MerchantID: "M123",
			OrderID:    orderID,
			Hash:       "backend-hash",
			Amount:     "15000.00",
			Currency:   "LKR",
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john@example.com",
			Address:    "123 Main Street",
			City:       "Colombo",
			Country:    "LK",
			ReturnURL:  "https://shop.example/payment/return",
			CancelURL:  "https://shop.example/payment/cancel",
			NotifyURL:  "https://shop.example/payment/notify",
		},
	}, nil
}

// recordingWidget captures every StartPayment handed to the gateway.
type recordingWidget struct {
	mu      sync.Mutex
	started []domain.PayHereParams
	err     error
}

func (w *recordingWidget) StartPayment(params domain.PayHereParams) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.started = append(w.started, params)
	return nil
}

func (w *recordingWidget) Started() []domain.PayHereParams {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.PayHereParams(nil), w.started...)
}
