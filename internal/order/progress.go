package order

type Progress struct {
	Scanned int `json:"scanned"`
	Total   int `json:"total"`
	Pct     int `json:"pct"`
}

type Aggregate struct {
	TotalItems     int `json:"total_items"`
	ScannedItems   int `json:"scanned_items"`
	RemainingItems int `json:"remaining_items"`
}

// OrderProgress sums the order's lines. Pct is 0 for an order with no
// requested items and otherwise rounds half up (5 of 8 gives 63).
func OrderProgress(o Order) Progress {
	var p Progress
	for _, line := range o.Products {
		p.Scanned += line.ScannedQty
		p.Total += line.RequestedQty
	}
	if p.Total > 0 {
		p.Pct = (200*p.Scanned + p.Total) / (2 * p.Total)
	}
	return p
}

func AggregateProgress(orders []Order) Aggregate {
	var a Aggregate
	for _, o := range orders {
		p := OrderProgress(o)
		a.TotalItems += p.Total
		a.ScannedItems += p.Scanned
	}
	a.RemainingItems = a.TotalItems - a.ScannedItems
	return a
}

// ReadyToConfirm reports whether every requested item has been scanned.
func ReadyToConfirm(o Order) bool {
	p := OrderProgress(o)
	return p.Total > 0 && p.Scanned == p.Total
}
