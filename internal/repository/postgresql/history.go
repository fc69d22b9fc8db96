package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO order_history (
            order_code, status, previous_status, action, changed_at
        ) VALUES ($1, $2, $3, $4, $5)
    `, entry.OrderCode, entry.Status, entry.PreviousStatus, entry.Action, entry.ChangedAt)
	return err
}

func (r *HistoryRepo) GetByOrderCode(ctx context.Context, code string) ([]*repository.HistoryEntry, error) {
	var entries []*repository.HistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT id, order_code, status, previous_status, action, changed_at
        FROM order_history
        WHERE order_code = $1
        ORDER BY changed_at ASC, id ASC
    `, code)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
