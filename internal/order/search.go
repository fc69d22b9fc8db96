package order

import "strings"

// Field extracts one searchable attribute of an order.
type Field func(Order) string

var (
	ByCode     Field = func(o Order) string { return o.Code }
	ByCustomer Field = func(o Order) string { return o.Customer }
	ByPhone    Field = func(o Order) string { return o.Phone }
	ByCity     Field = func(o Order) string { return o.City }
)

var defaultFields = []Field{ByCode, ByCustomer, ByPhone, ByCity}

// Filter keeps the orders where the query is a case-insensitive substring
// of any of the given fields (all four when none are given). A blank query
// returns orders as is.
func Filter(orders []Order, query string, fields ...Field) []Order {
	if strings.TrimSpace(query) == "" {
		return orders
	}
	if len(fields) == 0 {
		fields = defaultFields
	}

	needle := strings.ToLower(query)
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(o)), needle) {
				out = append(out, o)
				break
			}
		}
	}
	return out
}
