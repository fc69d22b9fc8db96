package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []Order {
	return []Order{
		{Code: "A1", Customer: "Mona Ali", Phone: "0501234567", City: "Riyadh", Status: StatusPreparing,
			Products: []Product{{SKU: "S1", RequestedQty: 5, ScannedQty: 5}, {SKU: "S2", RequestedQty: 3}}},
		{Code: "B2", Customer: "Omar Saleh", Phone: "0559876543", City: "Jeddah", Status: StatusPreparing,
			Products: []Product{{SKU: "S3", RequestedQty: 2, ScannedQty: 1}}},
		{Code: "C3", Customer: "سارة", Phone: "0561112222", City: "الرياض", Status: StatusConfirmed},
		{Code: "D4", Customer: "John", Phone: "0500000000", City: "Dammam", Status: StatusNew},
	}
}

func TestFilter(t *testing.T) {
	orders := sampleOrders()

	t.Run("phone substring", func(t *testing.T) {
		got := Filter(orders[:2], "0501")
		require.Len(t, got, 1)
		assert.Equal(t, "A1", got[0].Code)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := Filter(orders, "OMAR")
		require.Len(t, got, 1)
		assert.Equal(t, "B2", got[0].Code)
	})

	t.Run("arabic text", func(t *testing.T) {
		got := Filter(orders, "الرياض")
		require.Len(t, got, 1)
		assert.Equal(t, "C3", got[0].Code)
	})

	t.Run("blank query is identity", func(t *testing.T) {
		assert.Equal(t, orders, Filter(orders, ""))
		assert.Equal(t, orders, Filter(orders, "   "))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Filter(orders, "a")
		assert.Equal(t, once, Filter(once, "a"))
	})

	t.Run("restricted fields", func(t *testing.T) {
		assert.Empty(t, Filter(orders, "Riyadh", ByCode, ByPhone))
		assert.Len(t, Filter(orders, "Riyadh", ByCity), 1)
	})

	t.Run("no match", func(t *testing.T) {
		got := Filter(orders, "zzz")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestTab(t *testing.T) {
	view := Tab(sampleOrders(), StatusPreparing, "")

	assert.Equal(t, StatusPreparing, view.Status)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, Aggregate{TotalItems: 10, ScannedItems: 6, RemainingItems: 4}, view.Progress)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, Line{Code: "A1", Progress: Progress{Scanned: 5, Total: 8, Pct: 63}}, view.Lines[0])

	filtered := Tab(sampleOrders(), StatusPreparing, "jeddah")
	require.Equal(t, 1, filtered.Count)
	assert.Equal(t, "B2", filtered.Orders[0].Code)
	assert.Equal(t, Aggregate{TotalItems: 2, ScannedItems: 1, RemainingItems: 1}, filtered.Progress)

	empty := Tab(sampleOrders(), StatusRejected, "")
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Orders)
}

func TestPartition(t *testing.T) {
	orders := sampleOrders()
	groups := Partition(orders)

	require.Len(t, groups, len(Statuses))

	seen := make(map[string]Status)
	total := 0
	for status, group := range groups {
		for _, o := range group {
			prev, dup := seen[o.Code]
			assert.False(t, dup, "order %s in both %s and %s", o.Code, prev, status)
			assert.Equal(t, status, o.Status)
			seen[o.Code] = status
		}
		total += len(group)
	}
	assert.Equal(t, len(orders), total)
}
