package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/geocode"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/label"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/storage"
)

const (
	labelCaptureTimeout = 30 * time.Second
	shutdownTimeout     = 10 * time.Second
)

type userStore interface {
	server.UserRepo
	EnsureUser(ctx context.Context, username, password string) (bool, error)
}

// backend is the storage mode specific part of the wiring.
type backend struct {
	source    cache.OrderSource
	journal   storage.Journal
	users     userStore
	publisher *kafka.Publisher
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zl.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("Service stopped with error", zap.Error(err))
	}
	zl.Info("Service gracefully stopped")
}

func run(ctx context.Context, cfg config.Config, zl *zap.Logger) error {
	be, err := newBackend(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer be.close()

	if cfg.AdminPassword != "" {
		created, err := be.users.EnsureUser(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("failed to ensure admin user: %w", err)
		}
		if created {
			zl.Info("Admin user created", zap.String("username", cfg.AdminUsername))
		}
	} else {
		zl.Warn("ADMIN_PASSWORD is empty, no operator account is provisioned")
	}

	stg := storage.NewStorage(cache.NewOrderCache(zl), be.journal, zl)
	if be.source != nil {
		if err := stg.LoadInitialData(ctx, be.source); err != nil {
			return err
		}
	}

	labels := label.NewService(cfg.PrintBaseURL, label.NewChromeCapturer(cfg.ChromeWSURL, labelCaptureTimeout), zl)
	places := geocode.NewSearcher(geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeTimeout, zl))

	auditManager := server.NewAuditManager(server.AuditConfig{
		Workers:      cfg.Audit.Workers,
		BatchSize:    cfg.Audit.BatchSize,
		FlushTimeout: cfg.Audit.FlushTimeout,
		BufferSize:   cfg.Audit.BufferSize,
	}, zl)
	auditManager.Start(ctx)

	srv := server.New(server.Deps{
		Storage: stg,
		Users:   be.users,
		Labels:  labels,
		Places:  places,
	}, auditManager, zl)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(cfg.HTTPAddr)
	})
	if be.publisher != nil {
		g.Go(func() error {
			return be.publisher.Run(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
		}
		if be.publisher != nil {
			be.publisher.Shutdown()
		}
		auditManager.Shutdown(shutdownCtx)
		return errors.Join(errs...)
	})

	return g.Wait()
}

func newBackend(ctx context.Context, cfg config.Config, zl *zap.Logger) (*backend, error) {
	if cfg.StorageMode == config.StorageModeMemory {
		zl.Info("Using in-memory storage, orders are lost on restart")
		return &backend{
			journal: storage.NewMemoryJournal(),
			users:   storage.NewMemoryUsers(),
			close:   func() {},
		}, nil
	}

	database, err := db.NewDb(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("database init error: %w", err)
	}

	var producer kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.Kafka.Brokers)
		zl.Info("Publishing order events to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrderTopic))
	} else {
		producer = kafka.NewConsoleProducer(zl)
		zl.Warn("KAFKA_BROKERS is empty, order events go to the log")
	}

	outboxRepo := postgresql.NewOutboxTaskRepo()
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
	}, zl)

	return &backend{
		source:    postgresql.NewOrderRepo(database),
		journal:   postgresql.NewJournal(database, outboxRepo, cfg.Kafka.OrderTopic),
		users:     postgresql.NewUserRepo(database),
		publisher: publisher,
		close:     database.Close,
	}, nil
}
