package payhere

import (
	"log"
	"sync"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

// HostedWidget stands in for the browser-side PayHere component. The BFF
// cannot open the hosted form itself; it records the parameters of the
// attempt in flight so the storefront can pick them up, and the gateway's
// redirect/notify callbacks later report the outcome. When the widget is
// not loaded, StartPayment fails and the caller surfaces the distinct
// "refresh and retry" condition.
type HostedWidget struct {
	mu     sync.Mutex
	loaded bool
	last   *domain.PayHereParams
}

func NewHostedWidget(loaded bool) *HostedWidget {
	return &HostedWidget{loaded: loaded}
}

func (w *HostedWidget) StartPayment(params domain.PayHereParams) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.loaded {
		return ErrWidgetUnavailable
	}
	w.last = &params
	log.Printf("payment widget opened for order %s amount %s %s", params.OrderID, params.Amount, params.Currency)
	return nil
}

// InFlight returns the parameters of the attempt currently handed to the
// widget, or nil when none is.
func (w *HostedWidget) InFlight() *domain.PayHereParams {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}
