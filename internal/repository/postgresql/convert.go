package postgresql

import (
	"encoding/json"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository"
)

func toRow(o order.Order) (repository.Order, error) {
	products := o.Products
	if products == nil {
		products = []order.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return repository.Order{}, fmt.Errorf("failed to encode products of order %s: %w", o.Code, err)
	}

	return repository.Order{
		Code:             o.Code,
		Customer:         o.Customer,
		Phone:            o.Phone,
		City:             o.City,
		Status:           o.Status.String(),
		Products:         raw,
		Carrier:          o.Carrier,
		AssignedEmployee: o.AssignedEmployee,
		RejectReason:     o.RejectReason,
		RejectedAt:       o.RejectedAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}, nil
}

func fromRow(r repository.Order) (order.Order, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", r.Code, err)
	}

	var products []order.Product
	if len(r.Products) > 0 {
		if err := json.Unmarshal(r.Products, &products); err != nil {
			return order.Order{}, fmt.Errorf("failed to decode products of order %s: %w", r.Code, err)
		}
	}

	return order.Order{
		Code:             r.Code,
		Customer:         r.Customer,
		Phone:            r.Phone,
		City:             r.City,
		Status:           status,
		Products:         products,
		Carrier:          r.Carrier,
		AssignedEmployee: r.AssignedEmployee,
		RejectReason:     r.RejectReason,
		RejectedAt:       r.RejectedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}
