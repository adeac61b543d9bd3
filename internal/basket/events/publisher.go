package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fjod/go_shop/internal/basket/domain"
	"github.com/segmentio/kafka-go"
)

const Topic = "basket-checkout"

// CheckoutEvent is the payload published when a basket is checked out.
// Downstream consumers (ordering) pick it up from the basket-checkout topic.
type CheckoutEvent struct {
	UserName     string                    `json:"user_name"`
	Items        []domain.ShoppingCartItem `json:"items"`
	TotalPrice   float64                   `json:"total_price"`
	CheckedOutAt time.Time                 `json:"checked_out_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
}

func NewPublisher(brokers ...string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Publisher) PublishCheckout(ctx context.Context, event CheckoutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal checkout event failed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.UserName), // user name for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("basket-checkout")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish checkout event failed: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
