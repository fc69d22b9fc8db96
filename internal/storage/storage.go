package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
)

// Storage coordinates the order collection. Every mutation funnels through
// mutate, which validates, journals and commits under the cache write lock.
type Storage struct {
	orders  *cache.OrderCache
	journal Journal
	logger  *zap.Logger
	timeNow func() time.Time
}

func NewStorage(orders *cache.OrderCache, journal Journal, logger *zap.Logger) *Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Storage{
		orders:  orders,
		journal: journal,
		logger:  logger,
		timeNow: time.Now,
	}
}

func (s *Storage) LoadInitialData(ctx context.Context, src cache.OrderSource) error {
	if err := s.orders.LoadInitialData(ctx, src); err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	for status, group := range order.Partition(s.orders.Snapshot()) {
		metrics.OrdersByStatus.WithLabelValues(status.String()).Set(float64(len(group)))
	}
	return nil
}

// AddOrder accepts an order from intake. Intake orders carry no scan
// progress and no rejection details; an empty status means NEW.
func (s *Storage) AddOrder(ctx context.Context, o order.Order) (order.Order, error) {
	if o.Status == "" {
		o.Status = order.StatusNew
	}
	for i, line := range o.Products {
		if line.ScannedQty != 0 {
			return order.Order{}, &order.ValidationError{Field: fmt.Sprintf("products[%d].scanned_qty", i), Reason: "must be zero on intake"}
		}
	}
	if err := o.Validate(); err != nil {
		return order.Order{}, err
	}

	now := s.timeNow().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	err := s.orders.InsertWith(o, func(o order.Order) error {
		return s.journal.Record(ctx, Change{Action: ActionIntake, Current: o, ChangedAt: now})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues(ActionIntake).Inc()
		return order.Order{}, fmt.Errorf("failed to add order: %w", err)
	}

	metrics.OrdersIntakeTotal.Inc()
	metrics.OrdersByStatus.WithLabelValues(o.Status.String()).Inc()
	s.logger.Info("Order accepted", zap.String("code", o.Code), zap.String("status", o.Status.String()))
	return o.Clone(), nil
}

func (s *Storage) GetOrder(_ context.Context, code string) (order.Order, error) {
	o, ok := s.orders.Get(code)
	if !ok {
		return order.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}

// Orders searches the whole collection.
func (s *Storage) Orders(_ context.Context, query string) []order.Order {
	return order.Filter(s.orders.Snapshot(), query)
}

// UpdateOrder merges patch into the order with the given code. Unknown
// codes fail with order.ErrOrderNotFound and change nothing.
func (s *Storage) UpdateOrder(ctx context.Context, code string, patch order.Patch) (order.Order, error) {
	return s.mutate(ctx, code, ActionUpdate, func(cur order.Order, now time.Time) (order.Order, error) {
		return order.Apply(cur, patch, now)
	})
}

func (s *Storage) StartPreparing(ctx context.Context, code, employee string) (order.Order, error) {
	return s.mutate(ctx, code, ActionPrepare, func(cur order.Order, now time.Time) (order.Order, error) {
		return order.StartPreparing(cur, employee, now)
	})
}

func (s *Storage) ScanItem(ctx context.Context, code, sku string, qty int) (order.Order, error) {
	o, err := s.mutate(ctx, code, ActionScan, func(cur order.Order, now time.Time) (order.Order, error) {
		return order.Scan(cur, sku, qty, now)
	})
	if err == nil {
		metrics.ItemsScannedTotal.Add(float64(qty))
	}
	return o, err
}

func (s *Storage) ConfirmOrder(ctx context.Context, code, carrier string) (order.Order, error) {
	return s.mutate(ctx, code, ActionConfirm, func(cur order.Order, now time.Time) (order.Order, error) {
		return order.Confirm(cur, carrier, now)
	})
}

func (s *Storage) RejectOrder(ctx context.Context, code, reason string) (order.Order, error) {
	return s.mutate(ctx, code, ActionReject, func(cur order.Order, now time.Time) (order.Order, error) {
		return order.Reject(cur, reason, now)
	})
}

func (s *Storage) ShipOrder(ctx context.Context, code string) (order.Order, error) {
	return s.mutate(ctx, code, ActionShip, func(cur order.Order, now time.Time) (order.Order, error) {
		return order.Ship(cur, now)
	})
}

// Tab projects a fresh snapshot onto one workflow tab.
func (s *Storage) Tab(_ context.Context, status order.Status, query string) order.TabView {
	return order.Tab(s.orders.Snapshot(), status, query)
}

// Tabs projects one snapshot onto every workflow tab, so the views are
// mutually consistent.
func (s *Storage) Tabs(_ context.Context, query string) []order.TabView {
	snapshot := s.orders.Snapshot()
	views := make([]order.TabView, 0, len(order.Statuses))
	for _, status := range order.Statuses {
		views = append(views, order.Tab(snapshot, status, query))
	}
	return views
}

func (s *Storage) OrderHistory(ctx context.Context, code string) ([]HistoryEntry, error) {
	if _, ok := s.orders.Get(code); !ok {
		return nil, order.ErrOrderNotFound
	}
	entries, err := s.journal.History(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}
	return entries, nil
}

func (s *Storage) mutate(ctx context.Context, code, action string, fn func(order.Order, time.Time) (order.Order, error)) (order.Order, error) {
	var previous order.Status
	now := s.timeNow().UTC()

	next, err := s.orders.Update(code, func(cur order.Order) (order.Order, error) {
		next, err := fn(cur, now)
		if err != nil {
			return order.Order{}, err
		}
		previous = cur.Status
		change := Change{Action: action, Previous: &cur, Current: next, ChangedAt: now}
		if err := s.journal.Record(ctx, change); err != nil {
			return order.Order{}, fmt.Errorf("failed to record order change: %w", err)
		}
		return next, nil
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues(action).Inc()
		s.logger.Warn("Order mutation refused",
			zap.String("action", action),
			zap.String("code", code),
			zap.Error(err),
		)
		return order.Order{}, err
	}

	if previous != next.Status {
		metrics.StatusTransitionsTotal.WithLabelValues(previous.String(), next.Status.String()).Inc()
		metrics.OrdersByStatus.WithLabelValues(previous.String()).Dec()
		metrics.OrdersByStatus.WithLabelValues(next.Status.String()).Inc()
		if next.Status == order.StatusRejected {
			metrics.OrdersRejectedTotal.Inc()
		}
	}
	s.logger.Info("Order updated",
		zap.String("action", action),
		zap.String("code", code),
		zap.String("from", previous.String()),
		zap.String("to", next.Status.String()),
	)
	return next, nil
}
