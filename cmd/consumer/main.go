package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zl.Sync() }()

	if len(cfg.Kafka.Brokers) == 0 {
		zl.Fatal("KAFKA_BROKERS must be set for the consumer")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	consumer := kafka.NewEventConsumer(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic, cfg.Kafka.GroupID, logEvent(zl), zl)
	defer func() {
		zl.Info("Closing Kafka reader...")
		if err := consumer.Close(); err != nil {
			zl.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	zl.Info("Consumer connected",
		zap.String("topic", cfg.Kafka.OrderTopic),
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	if err := consumer.Start(ctx); err != nil {
		zl.Error("Consumer stopped with error", zap.Error(err))
		return
	}
	zl.Info("Shutdown signal received, consumer stopped")
}

func logEvent(zl *zap.Logger) kafka.EventHandler {
	return func(_ context.Context, event repository.OrderEventPayload) error {
		zl.Info("Order event",
			zap.String("event", event.Event),
			zap.String("order_code", event.OrderCode),
			zap.String("action", event.Action),
			zap.String("old_status", event.OldStatus),
			zap.String("new_status", event.NewStatus),
			zap.String("carrier", event.Carrier),
			zap.String("reject_reason", event.RejectReason),
			zap.Time("timestamp", event.Timestamp),
		)
		return nil
	}
}
