package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-julio/db"
	"cafe-julio/models"

	"github.com/jackc/pgx/v5"
)

// CreateOrder persists the order summary and its item lines in one
// transaction and returns the new id. The total is whatever the checkout
// composer captured; it is not recomputed here.
func CreateOrder(ctx context.Context, input models.CreateOrderInput) (int64, error) {
	if !db.Ready() {
		return 0, ErrStoreUnavailable
	}
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, customer_phone, customer_email, total_price, status, notes)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
		RETURNING id`,
		input.CustomerName, input.CustomerPhone, input.CustomerEmail,
		input.TotalPrice, models.OrderStatusPending, input.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	for _, it := range input.Items {
		subtotal := it.UnitPrice * int64(it.Quantity)
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, item_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, it.MenuItemID, it.ItemName, it.Quantity, it.UnitPrice, subtotal,
		)
		if err != nil {
			return 0, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// GetOrderByID returns (nil, nil) for an unknown id; order lookup has
// always surfaced missing orders as null rather than an error.
func GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	if !db.Ready() {
		return nil, ErrStoreUnavailable
	}
	var o models.Order
	err := db.Pool.QueryRow(ctx, `
		SELECT id, customer_name, customer_phone, COALESCE(customer_email, ''),
		       total_price, status, COALESCE(notes, ''), created_at
		FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
		&o.TotalPrice, &o.Status, &o.Notes, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
