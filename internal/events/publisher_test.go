package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *capturingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *capturingWriter) Close() error { return nil }

func TestCheckoutCompleted_PublishesKeyedPayload(t *testing.T) {
	writer := &capturingWriter{}
	p := &Publisher{writer: writer, timeout: time.Second}

	p.CheckoutCompleted(context.Background(), CheckoutCompletedEvent{
		SessionID:   "sess-1",
		OrderID:     "ORD-1",
		AddressID:   "a1",
		TotalAmount: 15000.00,
		Currency:    "LKR",
		CompletedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	})

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "ORD-1", string(writer.messages[0].Key))

	var event CheckoutCompletedEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, "sess-1", event.SessionID)
	assert.Equal(t, 15000.00, event.TotalAmount)
}

func TestCheckoutCompleted_BrokerFailureIsSwallowed(t *testing.T) {
	writer := &capturingWriter{err: errors.New("broker down")}
	p := &Publisher{writer: writer, timeout: time.Second}

	p.CheckoutCompleted(context.Background(), CheckoutCompletedEvent{OrderID: "ORD-2"})

	assert.Empty(t, writer.messages)
}

func TestCheckoutCompleted_NilPublisherIsNoop(t *testing.T) {
	var p *Publisher

	p.CheckoutCompleted(context.Background(), CheckoutCompletedEvent{OrderID: "ORD-3"})
}
