package services

import (
	"context"
	"fmt"
	"strconv"

	"cafe-order/db"
	"cafe-order/models"

	"github.com/jackc/pgx/v5"
)

// CreateOrder inserts the order row and its items in one transaction, so
// an order can never exist without its line items. Prices and quantities
// in input.Items are snapshots; they are stored as given, never re-read
// from the menu.
func CreateOrder(ctx context.Context, input models.CreateOrderInput) (int64, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var tableNumber, address *string
	if input.TableNumber != "" {
		tableNumber = &input.TableNumber
	}
	if input.OrderType == models.OrderTypeDelivery {
		address = &input.DeliveryAddress
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, table_number, total_amount, status, order_type, delivery_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		input.CustomerName, tableNumber, input.TotalAmount,
		models.OrderStatusAwaitingPayment, input.OrderType, address,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, it := range input.Items {
		menuID, err := strconv.ParseInt(it.MenuID, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad menu id %q: %w", it.MenuID, err)
		}
		batch.Queue(`
			INSERT INTO order_items (order_id, menu_id, quantity, price, subtotal)
			VALUES ($1, $2, $3, $4, $5)`,
			id, menuID, it.Quantity, it.Price, it.Subtotal,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert order items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// GetOrder loads one order row (used by tests and future fulfilment
// tooling; the checkout flow itself never reads orders back).
func GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := db.Pool.QueryRow(ctx, `
		SELECT id, customer_name, table_number, total_amount, status, order_type, delivery_address, created_at
		FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.CustomerName, &o.TableNumber, &o.TotalAmount, &o.Status, &o.OrderType, &o.DeliveryAddress, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrderItems returns the line items of an order.
func ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, order_id, menu_id, quantity, price, subtotal
		FROM order_items WHERE order_id = $1
		ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		var menuID int64
		if err := rows.Scan(&it.ID, &it.OrderID, &menuID, &it.Quantity, &it.Price, &it.Subtotal); err != nil {
			return nil, err
		}
		it.MenuID = strconv.FormatInt(menuID, 10)
		items = append(items, it)
	}
	return items, rows.Err()
}
