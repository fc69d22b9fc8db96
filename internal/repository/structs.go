package repository

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Order struct {
	Code             string          `db:"code"`
	Customer         string          `db:"customer"`
	Phone            string          `db:"phone"`
	City             string          `db:"city"`
	Status           string          `db:"status"`
	Products         json.RawMessage `db:"products"`
	Carrier          *string         `db:"carrier"`
	AssignedEmployee *string         `db:"assigned_employee"`
	RejectReason     *string         `db:"reject_reason"`
	RejectedAt       *time.Time      `db:"rejected_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type HistoryEntry struct {
	ID             int64     `db:"id"`
	OrderCode      string    `db:"order_code"`
	Status         string    `db:"status"`
	PreviousStatus string    `db:"previous_status"`
	Action         string    `db:"action"`
	ChangedAt      time.Time `db:"changed_at"`
}
