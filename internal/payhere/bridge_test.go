package payhere

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
)

type recordingWidget struct {
	started []domain.PayHereParams
	err     error
}

func (w *recordingWidget) StartPayment(params domain.PayHereParams) error {
	if w.err != nil {
		return w.err
	}
	w.started = append(w.started, params)
	return nil
}

func testParams(orderID string) domain.PayHereParams {
	return domain.PayHereParams{
		MerchantID: "M123",
		OrderID:    orderID,
		Hash:       "h",
		Amount:     "15000.00",
		Currency:   "LKR",
	}
}

func TestOpen_BeforeConfigure(t *testing.T) {
	bridge := NewBridge(&recordingWidget{})

	assert.ErrorIs(t, bridge.Open(), ErrNoAttempt)
}

func TestOpen_PassesConfiguredParams(t *testing.T) {
	widget := &recordingWidget{}
	bridge := NewBridge(widget)

	bridge.Configure(testParams("ORD-1"), Handlers{})
	require.NoError(t, bridge.Open())

	require.Len(t, widget.started, 1)
	assert.Equal(t, "ORD-1", widget.started[0].OrderID)
	assert.Equal(t, "15000.00", widget.started[0].Amount)
}

func TestOpen_WidgetNotLoaded(t *testing.T) {
	bridge := NewBridge(&recordingWidget{err: errors.New("script missing")})

	bridge.Configure(testParams("ORD-1"), Handlers{})

	assert.ErrorIs(t, bridge.Open(), ErrWidgetUnavailable)
}

func TestOpen_NilWidget(t *testing.T) {
	bridge := NewBridge(nil)

	bridge.Configure(testParams("ORD-1"), Handlers{})

	assert.ErrorIs(t, bridge.Open(), ErrWidgetUnavailable)
}

func TestCompleted_FiresHandlerExactlyOnce(t *testing.T) {
	var completed []string
	bridge := NewBridge(&recordingWidget{})

	id := bridge.Configure(testParams("ORD-1"), Handlers{
		OnCompleted: func(orderID string) { completed = append(completed, orderID) },
	})
	require.NoError(t, bridge.Open())

	assert.True(t, bridge.Completed(id, "ORD-1"))
	assert.False(t, bridge.Completed(id, "ORD-1"), "second delivery must be dropped")
	assert.Equal(t, []string{"ORD-1"}, completed)
}

func TestOutcome_AfterAnotherOutcomeIsDropped(t *testing.T) {
	var gotError string
	dismissed := false
	bridge := NewBridge(&recordingWidget{})

	id := bridge.Configure(testParams("ORD-1"), Handlers{
		OnDismissed: func() { dismissed = true },
		OnError:     func(msg string) { gotError = msg },
	})

	assert.True(t, bridge.Dismissed(id))
	assert.False(t, bridge.Fail(id, "late error"))
	assert.True(t, dismissed)
	assert.Empty(t, gotError)
}

func TestReconfigure_SupersedesPreviousAttempt(t *testing.T) {
	var completed []string
	bridge := NewBridge(&recordingWidget{})

	first := bridge.Configure(testParams("ORD-1"), Handlers{
		OnCompleted: func(orderID string) { completed = append(completed, "first:"+orderID) },
	})
	second := bridge.Configure(testParams("ORD-2"), Handlers{
		OnCompleted: func(orderID string) { completed = append(completed, "second:"+orderID) },
	})

	assert.False(t, bridge.Completed(first, "ORD-1"), "stale attempt must not fire")
	assert.True(t, bridge.Completed(second, "ORD-2"))
	assert.Equal(t, []string{"second:ORD-2"}, completed)
}

func TestUnknownAttemptID_IsDropped(t *testing.T) {
	bridge := NewBridge(&recordingWidget{})
	bridge.Configure(testParams("ORD-1"), Handlers{})

	assert.False(t, bridge.Completed("bogus", "ORD-1"))
	assert.False(t, bridge.Dismissed("bogus"))
	assert.False(t, bridge.Fail("bogus", "boom"))
}

func TestHostedWidget_RecordsInFlightAttempt(t *testing.T) {
	widget := NewHostedWidget(true)

	require.NoError(t, widget.StartPayment(testParams("ORD-9")))

	inflight := widget.InFlight()
	require.NotNil(t, inflight)
	assert.Equal(t, "ORD-9", inflight.OrderID)
}

func TestHostedWidget_NotLoaded(t *testing.T) {
	widget := NewHostedWidget(false)

	assert.ErrorIs(t, widget.StartPayment(testParams("ORD-9")), ErrWidgetUnavailable)
	assert.Nil(t, widget.InFlight())
}
