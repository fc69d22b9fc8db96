package postgresql_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository/postgresql"
)

var changed = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestOrderRepo_LoadOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		carrier := "Aramex"
		rows := []*repository.Order{
			{
				Code:      "A1",
				Customer:  "Mona Ali",
				Status:    "PREPARING",
				Products:  json.RawMessage(`[{"sku":"S1","requested_qty":5,"scanned_qty":5},{"sku":"S2","requested_qty":3,"scanned_qty":0}]`),
				CreatedAt: changed,
				UpdatedAt: changed,
			},
			{Code: "B2", Status: "confirmed", Carrier: &carrier, CreatedAt: changed, UpdatedAt: changed},
		}

		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*[]*repository.Order) = rows
				return nil
			})

		orders, err := repo.LoadOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Equal(t, order.StatusPreparing, orders[0].Status)
		assert.Equal(t, order.Progress{Scanned: 5, Total: 8, Pct: 63}, order.OrderProgress(orders[0]))
		assert.Equal(t, order.StatusConfirmed, orders[1].Status)
		assert.Equal(t, "Aramex", *orders[1].Carrier)
		assert.Nil(t, orders[1].Products)
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*[]*repository.Order) = []*repository.Order{{Code: "X", Status: "lost"}}
				return nil
			})

		_, err := repo.LoadOrders(ctx)
		assert.ErrorIs(t, err, order.ErrUnknownStatus)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		dbErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr)

		orders, err := repo.LoadOrders(ctx)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, orders)
	})
}

func TestOrderRepo_CreateTx(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOrderRepo(mockDB)

	row := &repository.Order{
		Code:      "A1",
		Customer:  "Mona Ali",
		Phone:     "0501234567",
		City:      "Riyadh",
		Status:    "NEW",
		Products:  json.RawMessage(`[]`),
		CreatedAt: changed,
		UpdatedAt: changed,
	}

	mockTx.EXPECT().Exec(
		gomock.Any(),
		gomock.Any(),
		gomock.Eq(row.Code),
		gomock.Eq(row.Customer),
		gomock.Eq(row.Phone),
		gomock.Eq(row.City),
		gomock.Eq(row.Status),
		gomock.Eq(row.Products),
		gomock.Nil(),
		gomock.Nil(),
		gomock.Nil(),
		gomock.Nil(),
		gomock.Eq(row.CreatedAt),
		gomock.Eq(row.UpdatedAt),
	).Return(pgconn.CommandTag("INSERT 0 1"), nil)

	assert.NoError(t, repo.CreateTx(ctx, mockTx, row))
}

func TestOrderRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()
	anyArgs := make([]interface{}, 0, 13)
	for i := 0; i < 13; i++ {
		anyArgs = append(anyArgs, gomock.Any())
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(anyArgs[0], anyArgs[1], anyArgs[2:]...).Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateTx(ctx, mockTx, &repository.Order{Code: "A1"}))
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(anyArgs[0], anyArgs[1], anyArgs[2:]...).Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateTx(ctx, mockTx, &repository.Order{Code: "A1"})
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("tx error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mock_database.NewMockDB(ctrl))

		txErr := errors.New("transaction error")
		mockTx.EXPECT().Exec(anyArgs[0], anyArgs[1], anyArgs[2:]...).Return(nil, txErr)

		err := repo.UpdateTx(ctx, mockTx, &repository.Order{Code: "A1"})
		assert.Equal(t, txErr, err)
	})
}
