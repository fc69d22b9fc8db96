package order

type Line struct {
	Code     string   `json:"code"`
	Progress Progress `json:"progress"`
}

// TabView is what one workflow tab shows.
type TabView struct {
	Status   Status    `json:"status"`
	Query    string    `json:"query,omitempty"`
	Orders   []Order   `json:"orders"`
	Count    int       `json:"count"`
	Progress Aggregate `json:"progress"`
	Lines    []Line    `json:"lines"`
}

// Project keeps the orders with the given status, preserving input order.
func Project(orders []Order, status Status) []Order {
	out := make([]Order, 0)
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

func Tab(orders []Order, status Status, query string) TabView {
	visible := Filter(Project(orders, status), query)
	lines := make([]Line, 0, len(visible))
	for _, o := range visible {
		lines = append(lines, Line{Code: o.Code, Progress: OrderProgress(o)})
	}
	return TabView{
		Status:   status,
		Query:    query,
		Orders:   visible,
		Count:    len(visible),
		Progress: AggregateProgress(visible),
		Lines:    lines,
	}
}

// Partition groups orders by every known status. Each known status has an
// entry, possibly empty.
func Partition(orders []Order) map[Status][]Order {
	groups := make(map[Status][]Order, len(Statuses))
	for _, s := range Statuses {
		groups[s] = make([]Order, 0)
	}
	for _, o := range orders {
		groups[o.Status] = append(groups[o.Status], o)
	}
	return groups
}
