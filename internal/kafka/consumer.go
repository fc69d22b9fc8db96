package kafka

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository"
)

type EventHandler func(ctx context.Context, event repository.OrderEventPayload) error

type EventConsumer struct {
	reader  *kafkago.Reader
	handler EventHandler
	logger  *zap.Logger
}

func NewEventConsumer(brokers []string, topic, groupID string, handler EventHandler, logger *zap.Logger) *EventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	return &EventConsumer{reader: reader, handler: handler, logger: logger}
}

// Start reads until ctx is cancelled. Undecodable messages are logged and
// skipped; read errors back off before retrying.
func (c *EventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Error reading message", zap.Error(err))
			select {
			case <-time.After(5 * time.Second):
				continue
			case <-ctx.Done():
				return nil
			}
		}

		var event repository.OrderEventPayload
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Warn("Skipping undecodable message",
				zap.Int64("offset", msg.Offset),
				zap.Int("partition", msg.Partition),
				zap.Error(err),
			)
			continue
		}

		if err := c.handler(ctx, event); err != nil {
			c.logger.Error("Failed to handle order event", zap.String("order_code", event.OrderCode), zap.Error(err))
		}
	}
}

func (c *EventConsumer) Close() error {
	return c.reader.Close()
}
