package order

import (
	"strings"
	"time"
)

// StartPreparing moves a new order into preparation, or keeps preparing an
// order that is already there. A non-empty employee is assigned.
func StartPreparing(o Order, employee string, now time.Time) (Order, error) {
	p := Patch{Status: StatusPtr(StatusPreparing)}
	if employee = strings.TrimSpace(employee); employee != "" {
		p.AssignedEmployee = &employee
	}
	return Apply(o, p, now)
}

// Scan records qty more scanned units on the line with the given SKU.
func Scan(o Order, sku string, qty int, now time.Time) (Order, error) {
	if o.Status.Terminal() {
		return Order{}, ErrOrderFinalized
	}
	if o.Status != StatusPreparing {
		return Order{}, ErrNotPreparing
	}
	if qty <= 0 {
		return Order{}, &ValidationError{Field: "qty", Reason: "must be positive"}
	}

	lines := make([]Product, len(o.Products))
	copy(lines, o.Products)
	for i := range lines {
		if lines[i].SKU != sku {
			continue
		}
		if lines[i].ScannedQty+qty > lines[i].RequestedQty {
			return Order{}, ErrOverScan
		}
		lines[i].ScannedQty += qty
		return Apply(o, Patch{Products: lines}, now)
	}
	return Order{}, ErrUnknownProduct
}

// Confirm closes preparation once every item is scanned. A non-empty
// carrier is assigned in the same step.
func Confirm(o Order, carrier string, now time.Time) (Order, error) {
	p := Patch{Status: StatusPtr(StatusConfirmed)}
	if carrier = strings.TrimSpace(carrier); carrier != "" {
		p.Carrier = &carrier
	}
	return Apply(o, p, now)
}

// Reject sets the status, the reason and the rejection time in one patch.
func Reject(o Order, reason string, now time.Time) (Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Order{}, &ValidationError{Field: "reject_reason", Reason: "must not be empty"}
	}
	return Apply(o, Patch{
		Status:       StatusPtr(StatusRejected),
		RejectReason: &reason,
		RejectedAt:   &now,
	}, now)
}

// Ship hands a confirmed order to its carrier.
func Ship(o Order, now time.Time) (Order, error) {
	return Apply(o, Patch{Status: StatusPtr(StatusShipped)}, now)
}
