package cache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
)

type OrderSource interface {
	LoadOrders(ctx context.Context) ([]order.Order, error)
}

// OrderCache owns the order collection. Values go in and come out as deep
// copies, so callers never hold a reference to cached state.
type OrderCache struct {
	mu    sync.RWMutex
	cache map[string]order.Order
	// seq keeps snapshots in intake order
	seq    map[string]int
	next   int
	logger *zap.Logger
}

func NewOrderCache(logger *zap.Logger) *OrderCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderCache{
		cache:  make(map[string]order.Order),
		seq:    make(map[string]int),
		logger: logger,
	}
}

func (c *OrderCache) LoadInitialData(ctx context.Context, src OrderSource) error {
	c.logger.Info("Loading initial data into order cache...")
	orders, err := src.LoadOrders(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range orders {
		c.putLocked(o)
	}
	c.logger.Info("Order cache loaded", zap.Int("orders", len(c.cache)))
	return nil
}

func (c *OrderCache) Get(code string) (order.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, found := c.cache[code]
	if !found {
		return order.Order{}, false
	}
	return o.Clone(), true
}

// InsertWith runs commit under the write lock and inserts o only if commit
// succeeds and the code is still free.
func (c *OrderCache) InsertWith(o order.Order, commit func(order.Order) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[o.Code]; found {
		return order.ErrDuplicateCode
	}
	if err := commit(o.Clone()); err != nil {
		return err
	}
	c.putLocked(o)
	c.logger.Debug("Cache: inserted order", zap.String("code", o.Code), zap.String("status", o.Status.String()))
	return nil
}

// Update is the single mutation path. fn receives a copy of the current
// order and returns its replacement; the write lock is held throughout, so
// concurrent updates to the collection are serialized. If fn fails, the
// cached order stays as it was.
func (c *OrderCache) Update(code string, fn func(current order.Order) (order.Order, error)) (order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, found := c.cache[code]
	if !found {
		return order.Order{}, order.ErrOrderNotFound
	}

	next, err := fn(current.Clone())
	if err != nil {
		return order.Order{}, err
	}
	next.Code = code
	c.cache[code] = next.Clone()
	c.logger.Debug("Cache: updated order", zap.String("code", code), zap.String("status", next.Status.String()))
	return next, nil
}

// Snapshot returns copies of all orders in intake order.
func (c *OrderCache) Snapshot() []order.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]order.Order, 0, len(c.cache))
	for _, o := range c.cache {
		out = append(out, o.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return c.seq[out[i].Code] < c.seq[out[j].Code]
	})
	return out
}

func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func (c *OrderCache) putLocked(o order.Order) {
	if _, found := c.seq[o.Code]; !found {
		c.seq[o.Code] = c.next
		c.next++
	}
	c.cache[o.Code] = o.Clone()
}
