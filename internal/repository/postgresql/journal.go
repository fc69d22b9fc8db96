package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/storage"
)

// Journal writes the order row, its status history and the outbox event
// of a change in a single transaction.
type Journal struct {
	db      db.DB
	orders  *OrderRepo
	history *HistoryRepo
	outbox  *OutboxTaskRepo
	topic   string
}

var _ storage.Journal = (*Journal)(nil)

func NewJournal(database db.DB, outbox *OutboxTaskRepo, topic string) *Journal {
	return &Journal{
		db:      database,
		orders:  NewOrderRepo(database),
		history: NewHistoryRepo(database),
		outbox:  outbox,
		topic:   topic,
	}
}

func (j *Journal) Record(ctx context.Context, change storage.Change) error {
	row, err := toRow(change.Current)
	if err != nil {
		return err
	}

	return db.InTx(ctx, j.db, func(tx db.Tx) error {
		if change.Previous == nil {
			if err := j.orders.CreateTx(ctx, tx, &row); err != nil {
				return fmt.Errorf("failed to insert order %s: %w", row.Code, err)
			}
		} else {
			if err := j.orders.UpdateTx(ctx, tx, &row); err != nil {
				return fmt.Errorf("failed to update order %s: %w", row.Code, err)
			}
		}

		if !change.StatusChanged() {
			return nil
		}

		entry := &repository.HistoryEntry{
			OrderCode:      row.Code,
			Status:         row.Status,
			PreviousStatus: change.PreviousStatus().String(),
			Action:         change.Action,
			ChangedAt:      change.ChangedAt,
		}
		if err := j.history.CreateTx(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to insert history of order %s: %w", row.Code, err)
		}

		task, err := j.eventTask(change)
		if err != nil {
			return err
		}
		return j.outbox.CreateTx(ctx, tx, task)
	})
}

func (j *Journal) eventTask(change storage.Change) (*repository.OutboxTask, error) {
	current := change.Current
	payload := repository.OrderEventPayload{
		Event:     repository.EventOrderStatusChanged,
		OrderCode: current.Code,
		Action:    change.Action,
		OldStatus: change.PreviousStatus().String(),
		NewStatus: current.Status.String(),
		Timestamp: change.ChangedAt,
	}
	if current.Carrier != nil {
		payload.Carrier = *current.Carrier
	}
	if current.RejectReason != nil {
		payload.RejectReason = *current.RejectReason
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order event: %w", err)
	}
	return &repository.OutboxTask{Topic: j.topic, Key: current.Code, Payload: raw}, nil
}

func (j *Journal) History(ctx context.Context, code string) ([]storage.HistoryEntry, error) {
	rows, err := j.history.GetByOrderCode(ctx, code)
	if err != nil {
		return nil, err
	}

	entries := make([]storage.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		status, err := order.ParseStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("history of order %s: %w", code, err)
		}
		entry := storage.HistoryEntry{
			Code:      row.OrderCode,
			Status:    status,
			Action:    row.Action,
			ChangedAt: row.ChangedAt,
		}
		if row.PreviousStatus != "" {
			prev, err := order.ParseStatus(row.PreviousStatus)
			if err != nil {
				return nil, fmt.Errorf("history of order %s: %w", code, err)
			}
			entry.PreviousStatus = prev
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
