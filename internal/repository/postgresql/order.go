package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/order"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository"
)

const orderColumns = `code, customer, phone, city, status, products, carrier,
            assigned_employee, reject_reason, rejected_at, created_at, updated_at`

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) GetAll(ctx context.Context) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT `+orderColumns+`
        FROM orders
        ORDER BY created_at ASC, code ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// LoadOrders returns the stored collection in intake order.
func (r *OrderRepo) LoadOrders(ctx context.Context) ([]order.Order, error) {
	rows, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := fromRow(*row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, o *repository.Order) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO orders (`+orderColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, o.Code, o.Customer, o.Phone, o.City, o.Status, o.Products, o.Carrier,
		o.AssignedEmployee, o.RejectReason, o.RejectedAt, o.CreatedAt, o.UpdatedAt)
	return err
}

func (r *OrderRepo) UpdateTx(ctx context.Context, tx db.Tx, o *repository.Order) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET
            customer = $1,
            phone = $2,
            city = $3,
            status = $4,
            products = $5,
            carrier = $6,
            assigned_employee = $7,
            reject_reason = $8,
            rejected_at = $9,
            updated_at = $10
        WHERE code = $11
    `, o.Customer, o.Phone, o.City, o.Status, o.Products, o.Carrier,
		o.AssignedEmployee, o.RejectReason, o.RejectedAt, o.UpdatedAt, o.Code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
