// Package payhere bridges the checkout flow to the hosted PayHere payment
// widget. The widget reports exactly one of three outcomes per payment
// attempt: completed, dismissed, or error.
package payhere

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

var (
	// ErrWidgetUnavailable means the external widget never loaded; no retry
	// within the session can fix it.
	ErrWidgetUnavailable = errors.New("payment widget is not available")
	// ErrNoAttempt means Open was called before Configure.
	ErrNoAttempt = errors.New("no payment attempt configured")
)

// Handlers receive the widget's terminal outcome for one attempt.
type Handlers struct {
	OnCompleted func(orderID string)
	OnDismissed func()
	OnError     func(message string)
}

// Widget is the externally loaded payment component's entry point.
type Widget interface {
	StartPayment(params domain.PayHereParams) error
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(params domain.PayHereParams) error

func (f WidgetFunc) StartPayment(params domain.PayHereParams) error { return f(params) }

type attempt struct {
	id       string
	params   domain.PayHereParams
	handlers Handlers
	resolved bool
}

// Bridge owns one payment attempt at a time. Each Configure mints a fresh
// attempt id; outcome delivery is keyed by that id, so a callback for a
// superseded or already-resolved attempt is dropped instead of firing the
// wrong handlers.
type Bridge struct {
	mu      sync.Mutex
	widget  Widget
	current *attempt
}

func NewBridge(widget Widget) *Bridge {
	return &Bridge{widget: widget}
}

// Configure stores the gateway parameters and outcome handlers for a new
// attempt and returns its id. Any unresolved previous attempt is
// superseded; its handlers will never fire.
func (b *Bridge) Configure(params domain.PayHereParams, handlers Handlers) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = &attempt{
		id:       uuid.NewString(),
		params:   params,
		handlers: handlers,
	}
	return b.current.id
}

// Open hands the configured parameters to the widget. The widget's outcome
// arrives later through Completed/Dismissed/Fail, never synchronously.
func (b *Bridge) Open() error {
	b.mu.Lock()
	if b.current == nil {
		b.mu.Unlock()
		return ErrNoAttempt
	}
	if b.widget == nil {
		b.mu.Unlock()
		return ErrWidgetUnavailable
	}
	params := b.current.params
	widget := b.widget
	b.mu.Unlock()

	if err := widget.StartPayment(params); err != nil {
		return ErrWidgetUnavailable
	}
	return nil
}

// Completed delivers the widget's success outcome for the given attempt.
// It reports whether the outcome was accepted.
func (b *Bridge) Completed(attemptID, orderID string) bool {
	handlers, ok := b.resolve(attemptID)
	if !ok {
		return false
	}
	if handlers.OnCompleted != nil {
		handlers.OnCompleted(orderID)
	}
	return true
}

// Dismissed delivers the user-closed-the-widget outcome.
func (b *Bridge) Dismissed(attemptID string) bool {
	handlers, ok := b.resolve(attemptID)
	if !ok {
		return false
	}
	if handlers.OnDismissed != nil {
		handlers.OnDismissed()
	}
	return true
}

// Fail delivers the widget's error outcome.
func (b *Bridge) Fail(attemptID, message string) bool {
	handlers, ok := b.resolve(attemptID)
	if !ok {
		return false
	}
	if handlers.OnError != nil {
		handlers.OnError(message)
	}
	return true
}

// resolve marks the attempt terminal, at most once per attempt id.
func (b *Bridge) resolve(attemptID string) (Handlers, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil || b.current.id != attemptID || b.current.resolved {
		return Handlers{}, false
	}
	b.current.resolved = true
	return b.current.handlers, true
}
