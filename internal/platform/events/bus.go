// Package events carries domain events between bounded contexts over an
// in-process watermill pub/sub.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Handler consumes the JSON payload of a single message.
type Handler func(ctx context.Context, payload []byte) error

// Bus publishes JSON encoded events to named topics.
type Bus struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

// NewBus creates an in-process bus. Messages published to a topic without
// subscribers are dropped.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)
	return &Bus{pubSub: pubSub, logger: logger}
}

// Publish encodes payload as JSON and sends it to topic.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	if b == nil || b.pubSub == nil {
		return errors.New("event bus not configured")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)
	msg.SetContext(ctx)
	return b.pubSub.Publish(topic, msg)
}

// Subscribe starts a goroutine feeding every message on topic to handler until
// ctx is cancelled or the bus is closed. Failed messages are logged and acked
// so a poisoned payload is never redelivered forever.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	if b == nil || b.pubSub == nil {
		return errors.New("event bus not configured")
	}
	messages, err := b.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}
	go func() {
		for msg := range messages {
			if err := handler(msg.Context(), msg.Payload); err != nil {
				b.logger.Error("event handler failed",
					slog.String("topic", topic),
					slog.String("message.id", msg.UUID),
					slog.String("error", err.Error()),
				)
			}
			msg.Ack()
		}
	}()
	return nil
}

// Close stops delivery to all subscribers.
func (b *Bus) Close() error {
	if b == nil || b.pubSub == nil {
		return nil
	}
	return b.pubSub.Close()
}
