// Package wizard drives the three-step checkout flow: shipping address
// selection, hosted-gateway payment, completion. All hard behavior
// (inventory, payment authorization, persistence) lives behind the backend
// API and the payment gateway; the wizard owns only the step state and the
// preconditions between them.
package wizard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
	"github.com/LahiruMudith/mack-trading-fn/internal/events"
	"github.com/LahiruMudith/mack-trading-fn/internal/payhere"
)

// AddressProvider returns the caller's saved shipping addresses.
type AddressProvider interface {
	GetAllAddresses(ctx context.Context) ([]domain.ShippingAddress, error)
}

// CartProvider returns the current cart with its backend-computed total.
type CartProvider interface {
	GetCart(ctx context.Context) (*domain.Cart, error)
}

// OrderInitiator creates a pending order for a saved address and returns
// the gateway parameters computed for it.
type OrderInitiator interface {
	PlaceOrder(ctx context.Context, addressID string) (*domain.PendingOrder, error)
}

// Gateway is the payment bridge surface the wizard needs.
type Gateway interface {
	Configure(params domain.PayHereParams, handlers payhere.Handlers) string
	Open() error
	Completed(attemptID, orderID string) bool
	Dismissed(attemptID string) bool
	Fail(attemptID, message string) bool
}

// State is a read-only snapshot of the wizard for the UI.
type State struct {
	Step              domain.Step
	SelectedAddressID string
	Draft             domain.CheckoutDraft
	Addresses         []domain.ShippingAddress
	TotalAmount       float64
	PendingOrderID    string
	PayInFlight       bool
	LastError         string
}

// Wizard is one checkout session. Methods are safe for concurrent use;
// gateway callbacks re-enter asynchronously, outside the call stack that
// invoked Pay.
type Wizard struct {
	id        string
	addresses AddressProvider
	carts     CartProvider
	orders    OrderInitiator
	gateway   Gateway
	publisher *events.Publisher

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	step        domain.Step
	selectedID  string
	draft       domain.CheckoutDraft
	addressList []domain.ShippingAddress
	totalAmount float64
	pending     *domain.PendingOrder
	attemptID   string
	payInFlight bool
	lastError   string
	closed      bool
}

func New(id string, addresses AddressProvider, carts CartProvider, orders OrderInitiator, gateway Gateway, publisher *events.Publisher) *Wizard {
	ctx, cancel := context.WithCancel(context.Background())
	return &Wizard{
		id:        id,
		addresses: addresses,
		carts:     carts,
		orders:    orders,
		gateway:   gateway,
		publisher: publisher,
		ctx:       ctx,
		cancel:    cancel,
		step:      domain.StepShipping,
	}
}

func (w *Wizard) ID() string { return w.id }

// Initialize fetches saved addresses and the cart total concurrently. The
// two fetches are independent: either failing degrades its own slice of
// state (no saved addresses, zero total) without failing the flow. Results
// arriving after Close are discarded.
func (w *Wizard) Initialize() {
	var g errgroup.Group

	g.Go(func() error {
		addresses, err := w.addresses.GetAllAddresses(w.ctx)
		if err != nil {
			log.Printf("wizard %s: failed to load addresses: %v", w.id, err)
			return nil
		}
		w.mu.Lock()
		if !w.closed {
			w.addressList = addresses
		}
		w.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		cart, err := w.carts.GetCart(w.ctx)
		if err != nil {
			log.Printf("wizard %s: failed to load cart total: %v", w.id, err)
			return nil
		}
		w.mu.Lock()
		if !w.closed {
			w.totalAmount = cart.TotalAmount
		}
		w.mu.Unlock()
		return nil
	})

	g.Wait()
}

// SelectAddress picks a saved address and pre-fills the draft from it.
func (w *Wizard) SelectAddress(addressID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	for i := range w.addressList {
		if w.addressList[i].ID == addressID {
			w.selectedID = addressID
			w.draft.FillFrom(&w.addressList[i])
			w.lastError = ""
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownAddress, addressID)
}

// SelectNewAddress switches to manual entry: selection becomes the "new"
// sentinel and the draft's address fields are cleared.
func (w *Wizard) SelectNewAddress() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.selectedID = domain.SelectionNew
	w.draft.ClearAddressFields()
	w.lastError = ""
	return nil
}

// EditField updates one draft field. Editing an address field after a saved
// address was selected clears the selection: the visible form and the
// selected id are never allowed to silently disagree.
func (w *Wizard) EditField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	addressField := true
	switch name {
	case "email":
		w.draft.Email = value
		addressField = false
	case "first_name":
		w.draft.FirstName = value
		addressField = false
	case "last_name":
		w.draft.LastName = value
		addressField = false
	case "address":
		w.draft.Address = value
	case "city":
		w.draft.City = value
	case "state":
		w.draft.State = value
	case "zip":
		w.draft.Zip = value
	case "country":
		w.draft.Country = value
	case "phone":
		w.draft.Phone = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	if addressField && w.selectedID != "" && w.selectedID != domain.SelectionNew {
		w.selectedID = ""
	}
	return nil
}

// Advance moves Shipping to Payment. Payment to Complete happens only
// through the gateway's completed callback, never by direct call.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if !w.step.CanTransitionTo(domain.StepPayment) {
		return IllegalTransitionError
	}
	w.step = domain.StepPayment
	return nil
}

// Back moves Payment to Shipping. No backward transition exists from
// Complete.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if w.step != domain.StepPayment {
		return IllegalTransitionError
	}
	w.step = domain.StepShipping
	return nil
}

// Pay places the order for the selected saved address and opens the
// payment widget. Preconditions are checked locally first: no backend call
// is made when no saved address is selected or another attempt is in
// flight. Order-initiation failures keep the wizard on the Payment step,
// retryable by calling Pay again.
func (w *Wizard) Pay() (*domain.PendingOrder, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrClosed
	}
	if w.step != domain.StepPayment {
		w.mu.Unlock()
		return nil, IllegalTransitionError
	}
	if w.payInFlight {
		w.mu.Unlock()
		return nil, ErrPaymentInFlight
	}
	if w.selectedID == "" || w.selectedID == domain.SelectionNew {
		w.lastError = "Please select a saved shipping address to continue."
		w.mu.Unlock()
		return nil, ErrNoAddressSelected
	}
	addressID := w.selectedID
	w.payInFlight = true
	w.mu.Unlock()

	pending, err := w.orders.PlaceOrder(w.ctx, addressID)

	w.mu.Lock()
	if err != nil {
		w.payInFlight = false
		w.lastError = "Could not start the payment. Please try again."
		w.mu.Unlock()
		return nil, fmt.Errorf("order initiation failed: %w", err)
	}

	w.pending = pending
	w.attemptID = w.gateway.Configure(pending.Params, payhere.Handlers{
		OnCompleted: w.handleCompleted,
		OnDismissed: w.handleDismissed,
		OnError:     w.handleError,
	})
	w.lastError = ""
	// The lock is released before Open: the widget is free to deliver its
	// outcome at any point from here on.
	w.mu.Unlock()

	if openErr := w.gateway.Open(); openErr != nil {
		w.mu.Lock()
		w.payInFlight = false
		w.lastError = "The payment widget did not load. Refresh the page and try again."
		w.mu.Unlock()
		return nil, openErr
	}

	return pending, nil
}

// CompletePayment delivers the gateway's completed callback for the
// current attempt. It reports whether the outcome was accepted.
func (w *Wizard) CompletePayment(orderID string) bool {
	return w.gateway.Completed(w.currentAttempt(), orderID)
}

// DismissPayment delivers the gateway's dismissed callback.
func (w *Wizard) DismissPayment() bool {
	return w.gateway.Dismissed(w.currentAttempt())
}

// FailPayment delivers the gateway's error callback.
func (w *Wizard) FailPayment(message string) bool {
	return w.gateway.Fail(w.currentAttempt(), message)
}

func (w *Wizard) currentAttempt() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attemptID
}

// handleCompleted is the only path to the Complete step. A completed
// callback whose order id does not match the pending order is treated as a
// gateway error, not a completion.
func (w *Wizard) handleCompleted(orderID string) {
	w.mu.Lock()

	if w.pending == nil || w.closed {
		w.mu.Unlock()
		return
	}
	if orderID != w.pending.OrderID {
		w.payInFlight = false
		w.lastError = fmt.Sprintf("Payment confirmation did not match order %s. Contact support before retrying.", w.pending.OrderID)
		log.Printf("wizard %s: gateway reported completion for order %s, expected %s", w.id, orderID, w.pending.OrderID)
		w.mu.Unlock()
		return
	}

	w.step = domain.StepComplete
	w.payInFlight = false
	w.lastError = ""
	w.draft = domain.CheckoutDraft{}

	event := events.CheckoutCompletedEvent{
		SessionID:   w.id,
		OrderID:     w.pending.OrderID,
		AddressID:   w.selectedID,
		TotalAmount: w.totalAmount,
		Currency:    w.pending.Params.Currency,
		CompletedAt: time.Now(),
	}
	publisher := w.publisher
	w.mu.Unlock()

	publisher.CheckoutCompleted(context.Background(), event)
}

// handleDismissed is a silent no-op: the user closed the widget, the step
// and the pending order stay as they were for a future retry.
func (w *Wizard) handleDismissed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.payInFlight = false
}

func (w *Wizard) handleError(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.payInFlight = false
	w.lastError = fmt.Sprintf("Payment failed: %s", message)
}

// Snapshot returns a copy of the wizard state for rendering.
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := State{
		Step:              w.step,
		SelectedAddressID: w.selectedID,
		Draft:             w.draft,
		Addresses:         append([]domain.ShippingAddress(nil), w.addressList...),
		TotalAmount:       w.totalAmount,
		PayInFlight:       w.payInFlight,
		LastError:         w.lastError,
	}
	if w.pending != nil {
		state.PendingOrderID = w.pending.OrderID
	}
	return state
}

// Close tears the session down: in-flight fetches are cancelled and late
// results discarded.
func (w *Wizard) Close() {
	w.mu.Lock()
	w.closed = true
	w.draft = domain.CheckoutDraft{}
	w.mu.Unlock()
	w.cancel()
}
