package order

import "time"

type Status string

const (
	StatusNew       Status = "NEW"
	StatusPreparing Status = "PREPARING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusShipped   Status = "SHIPPED"
)

// Statuses lists every workflow state in pipeline order.
var Statuses = []Status{
	StatusNew,
	StatusPreparing,
	StatusConfirmed,
	StatusRejected,
	StatusShipped,
}

type Product struct {
	SKU          string `json:"sku"`
	Name         string `json:"name,omitempty"`
	RequestedQty int    `json:"requested_qty"`
	ScannedQty   int    `json:"scanned_qty"`
}

type Order struct {
	Code             string     `json:"code"`
	Customer         string     `json:"customer"`
	Phone            string     `json:"phone"`
	City             string     `json:"city"`
	Status           Status     `json:"status"`
	Products         []Product  `json:"products"`
	Carrier          *string    `json:"carrier,omitempty"`
	AssignedEmployee *string    `json:"assigned_employee,omitempty"`
	RejectReason     *string    `json:"reject_reason,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Clone returns a deep copy that shares no memory with o.
func (o Order) Clone() Order {
	c := o
	if o.Products != nil {
		c.Products = make([]Product, len(o.Products))
		copy(c.Products, o.Products)
	}
	c.Carrier = cloneString(o.Carrier)
	c.AssignedEmployee = cloneString(o.AssignedEmployee)
	c.RejectReason = cloneString(o.RejectReason)
	if o.RejectedAt != nil {
		t := *o.RejectedAt
		c.RejectedAt = &t
	}
	return c
}

// Validate checks the invariants every stored order must satisfy.
func (o Order) Validate() error {
	if o.Code == "" {
		return &ValidationError{Field: "code", Reason: "must not be empty"}
	}
	if !o.Status.Valid() {
		return UnknownStatusError(o.Status)
	}
	for i, p := range o.Products {
		if p.RequestedQty < 0 {
			return &ValidationError{Field: lineField(i, "requested_qty"), Reason: "must not be negative"}
		}
		if p.ScannedQty < 0 {
			return &ValidationError{Field: lineField(i, "scanned_qty"), Reason: "must not be negative"}
		}
		if p.ScannedQty > p.RequestedQty {
			return &ValidationError{Field: lineField(i, "scanned_qty"), Reason: "exceeds requested quantity"}
		}
	}

	rejected := o.Status == StatusRejected
	hasReason := o.RejectReason != nil && *o.RejectReason != ""
	hasTime := o.RejectedAt != nil && !o.RejectedAt.IsZero()
	switch {
	case rejected && (!hasReason || !hasTime):
		return &ValidationError{Field: "reject_reason", Reason: "rejected orders need both a reason and a rejection time"}
	case !rejected && (o.RejectReason != nil || o.RejectedAt != nil):
		return &ValidationError{Field: "reject_reason", Reason: "only rejected orders carry rejection details"}
	}
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
