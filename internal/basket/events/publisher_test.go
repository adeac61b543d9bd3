package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fjod/go_shop/internal/basket/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
)

type mockWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (m *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msgs...)
	return nil
}

func (m *mockWriter) Close() error {
	m.closed = true
	return nil
}

func TestPublishCheckout(t *testing.T) {
	w := &mockWriter{}
	p := &Publisher{writer: w}

	event := CheckoutEvent{
		UserName: "alice",
		Items: []domain.ShoppingCartItem{
			{ProductID: "p1", ProductName: "Widget", Price: 9.99, Quantity: 2},
		},
		TotalPrice:   19.98,
		CheckedOutAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	err := p.PublishCheckout(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "alice", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "basket-checkout", string(msg.Headers[0].Value))

	var decoded CheckoutEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "alice", decoded.UserName)
	assert.Equal(t, 19.98, decoded.TotalPrice)
	assert.Equal(t, 1, len(decoded.Items))
}

func TestPublishCheckout_WriterError(t *testing.T) {
	writerErr := errors.New("broker unreachable")
	p := &Publisher{writer: &mockWriter{err: writerErr}}

	err := p.PublishCheckout(context.Background(), CheckoutEvent{UserName: "alice"})
	require.ErrorIs(t, err, writerErr)
}

func TestClose(t *testing.T) {
	w := &mockWriter{}
	p := &Publisher{writer: w}

	require.NoError(t, p.Close())
	assert.Assert(t, w.closed)
}
