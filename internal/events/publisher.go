// Package events publishes storefront analytics events. Delivery is
// best-effort: checkout never blocks on the broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// CheckoutCompletedEvent is emitted when a payment attempt reaches the
// Complete step.
type CheckoutCompletedEvent struct {
	SessionID   string    `json:"session_id"`
	OrderID     string    `json:"order_id"`
	AddressID   string    `json:"address_id"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	CompletedAt time.Time `json:"completed_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes checkout events to Kafka. A nil Publisher is a valid
// no-op, so the wizard works without a broker configured.
type Publisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewPublisher(brokers ...string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "storefront-checkout",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, timeout: 5 * time.Second}
}

// CheckoutCompleted publishes the event, logging rather than returning
// broker failures: the order is already paid, an event drop must not
// surface to the user.
func (p *Publisher) CheckoutCompleted(ctx context.Context, event CheckoutCompletedEvent) {
	if p == nil {
		return
	}
	if err := p.publish(ctx, event.OrderID, event); err != nil {
		log.Printf("failed to publish checkout-completed event for order %s: %v", event.OrderID, err)
	}
}

func (p *Publisher) publish(ctx context.Context, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		log.Printf("error closing kafka writer: %v", err)
	}
}
