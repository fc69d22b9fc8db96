package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPreparing(t *testing.T) {
	o := preparingOrder()
	o.Status = StatusNew

	next, err := StartPreparing(o, " Khalid ", fixedTime)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, next.Status)
	require.NotNil(t, next.AssignedEmployee)
	assert.Equal(t, "Khalid", *next.AssignedEmployee)

	again, err := StartPreparing(next, "", fixedTime)
	require.NoError(t, err)
	assert.Equal(t, "Khalid", *again.AssignedEmployee)

	o.Status = StatusConfirmed
	_, err = StartPreparing(o, "", fixedTime)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestScan(t *testing.T) {
	t.Run("adds units", func(t *testing.T) {
		next, err := Scan(preparingOrder(), "SKU-2", 2, fixedTime)
		require.NoError(t, err)
		assert.Equal(t, 2, next.Products[1].ScannedQty)
		assert.Equal(t, Progress{Scanned: 7, Total: 8, Pct: 88}, OrderProgress(next))
	})

	t.Run("over scan", func(t *testing.T) {
		_, err := Scan(preparingOrder(), "SKU-1", 1, fixedTime)
		assert.ErrorIs(t, err, ErrOverScan)
	})

	t.Run("unknown sku", func(t *testing.T) {
		_, err := Scan(preparingOrder(), "SKU-404", 1, fixedTime)
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("non positive qty", func(t *testing.T) {
		_, err := Scan(preparingOrder(), "SKU-2", 0, fixedTime)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("not preparing", func(t *testing.T) {
		o := preparingOrder()
		o.Status = StatusNew
		_, err := Scan(o, "SKU-2", 1, fixedTime)
		assert.ErrorIs(t, err, ErrNotPreparing)
	})

	t.Run("input untouched", func(t *testing.T) {
		o := preparingOrder()
		_, err := Scan(o, "SKU-2", 1, fixedTime)
		require.NoError(t, err)
		assert.Equal(t, 0, o.Products[1].ScannedQty)
	})
}

func TestConfirm(t *testing.T) {
	_, err := Confirm(preparingOrder(), "Aramex", fixedTime)
	assert.ErrorIs(t, err, ErrScanIncomplete)

	o := preparingOrder()
	o.Products[1].ScannedQty = 3
	next, err := Confirm(o, "Aramex", fixedTime)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, next.Status)
	require.NotNil(t, next.Carrier)
	assert.Equal(t, "Aramex", *next.Carrier)

	o.Status = StatusNew
	_, err = Confirm(o, "", fixedTime)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReject(t *testing.T) {
	next, err := Reject(preparingOrder(), "customer unreachable", fixedTime)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, next.Status)
	assert.Equal(t, "customer unreachable", *next.RejectReason)
	assert.Equal(t, fixedTime, *next.RejectedAt)

	_, err = Reject(preparingOrder(), "  ", fixedTime)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Reject(next, "again", fixedTime)
	assert.ErrorIs(t, err, ErrOrderFinalized)
}

func TestShip(t *testing.T) {
	o := preparingOrder()
	o.Status = StatusConfirmed

	_, err := Ship(o, fixedTime)
	assert.ErrorIs(t, err, ErrCarrierRequired)

	o.Carrier = StringPtr("SMSA")
	next, err := Ship(o, fixedTime)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, next.Status)
	assert.True(t, next.Status.Terminal())
}
