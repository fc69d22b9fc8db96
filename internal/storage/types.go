package storage

import (
	"time"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
)

const (
	ActionIntake  = "intake"
	ActionUpdate  = "update"
	ActionPrepare = "prepare"
	ActionScan    = "scan"
	ActionConfirm = "confirm"
	ActionReject  = "reject"
	ActionShip    = "ship"
)

// Change describes one committed mutation. Previous is nil for intake.
type Change struct {
	Action    string
	Previous  *order.Order
	Current   order.Order
	ChangedAt time.Time
}

func (c Change) StatusChanged() bool {
	return c.Previous == nil || c.Previous.Status != c.Current.Status
}

func (c Change) PreviousStatus() order.Status {
	if c.Previous == nil {
		return ""
	}
	return c.Previous.Status
}

type HistoryEntry struct {
	Code           string       `json:"code"`
	Status         order.Status `json:"status"`
	PreviousStatus order.Status `json:"previous_status,omitempty"`
	Action         string       `json:"action"`
	ChangedAt      time.Time    `json:"changed_at"`
}
