package order

import "time"

// Patch is a sparse set of field assignments. A nil field keeps the current
// value; an empty Carrier or AssignedEmployee clears the label.
type Patch struct {
	Status           *Status    `json:"status,omitempty"`
	Customer         *string    `json:"customer,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	City             *string    `json:"city,omitempty"`
	Products         []Product  `json:"products,omitempty"`
	Carrier          *string    `json:"carrier,omitempty"`
	AssignedEmployee *string    `json:"assigned_employee,omitempty"`
	RejectReason     *string    `json:"reject_reason,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`
}

func (p Patch) Empty() bool {
	return p.Status == nil && p.Customer == nil && p.Phone == nil && p.City == nil &&
		p.Products == nil && p.Carrier == nil && p.AssignedEmployee == nil &&
		p.RejectReason == nil && p.RejectedAt == nil
}

// Apply merges p into a copy of o and validates the result. o itself is
// never modified; on error the zero Order is returned.
func Apply(o Order, p Patch, now time.Time) (Order, error) {
	if o.Status.Terminal() {
		return Order{}, ErrOrderFinalized
	}

	next := o.Clone()
	if p.Status != nil {
		if err := checkTransition(o.Status, *p.Status); err != nil {
			return Order{}, err
		}
		next.Status = *p.Status
	}
	if p.Customer != nil {
		next.Customer = *p.Customer
	}
	if p.Phone != nil {
		next.Phone = *p.Phone
	}
	if p.City != nil {
		next.City = *p.City
	}
	if p.Products != nil {
		next.Products = make([]Product, len(p.Products))
		copy(next.Products, p.Products)
	}
	if p.Carrier != nil {
		next.Carrier = optional(*p.Carrier)
	}
	if p.AssignedEmployee != nil {
		next.AssignedEmployee = optional(*p.AssignedEmployee)
	}
	if p.RejectReason != nil {
		next.RejectReason = cloneString(p.RejectReason)
	}
	if p.RejectedAt != nil {
		t := *p.RejectedAt
		next.RejectedAt = &t
	}
	next.UpdatedAt = now

	if err := next.Validate(); err != nil {
		return Order{}, err
	}
	if err := checkWorkflow(o, next); err != nil {
		return Order{}, err
	}
	return next, nil
}

// checkWorkflow holds every path into the collection to the same gates as
// the workflow actions: scan counts move only while preparing, an order is
// confirmed only when fully scanned and shipped only with a carrier.
func checkWorkflow(prev, next Order) error {
	if prev.Status != StatusPreparing && scanChanged(prev, next) {
		return ErrNotPreparing
	}
	if next.Status == prev.Status {
		return nil
	}
	switch {
	case next.Status == StatusConfirmed && !ReadyToConfirm(next):
		return ErrScanIncomplete
	case next.Status == StatusShipped && next.Carrier == nil:
		return ErrCarrierRequired
	}
	return nil
}

func scanChanged(prev, next Order) bool {
	before, after := scanCounts(prev), scanCounts(next)
	if len(before) != len(after) {
		return true
	}
	for sku, n := range before {
		if after[sku] != n {
			return true
		}
	}
	return false
}

func scanCounts(o Order) map[string]int {
	counts := make(map[string]int)
	for _, line := range o.Products {
		if line.ScannedQty > 0 {
			counts[line.SKU] += line.ScannedQty
		}
	}
	return counts
}

// StatusPtr is a shorthand for building patches.
func StatusPtr(s Status) *Status {
	return &s
}

func StringPtr(s string) *string {
	return &s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
