package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — архив оформленных заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — транзакционный идемпотентный upsert заказа; позиции заменяются целиком.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	// после Commit вернёт ErrTxClosed
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `
		INSERT INTO orders (id, client, lat, lng, order_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			client = EXCLUDED.client,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			order_date = EXCLUDED.order_date
	`, order.ID, order.Client, order.Location.Lat, order.Location.Lng, order.OrderDate.UTC()); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete order products: %w", err)
	}
	if len(order.Products) > 0 {
		if err = copyProducts(ctx, tx, order.ID, order.Products); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID — заказ с позициями; (nil, nil), если не найден.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order := &domain.Order{ID: id}
	var orderDate time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT client, lat, lng, order_date
		FROM orders WHERE id = $1
	`, id).Scan(&order.Client, &order.Location.Lat, &order.Location.Lng, &orderDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	order.OrderDate = orderDate.UTC()

	byID := map[string]*domain.Order{id: order}
	if err := r.loadProducts(ctx, []string{id}, byID); err != nil {
		return nil, err
	}
	return order, nil
}

// LastN — последние n архивированных заказов (новые первыми).
// Два запроса: базовые записи страницы и позиции для всех id сразу.
func (r *OrderRepository) LastN(ctx context.Context, n int) ([]*domain.Order, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, client, lat, lng, order_date
		FROM orders
		ORDER BY archived_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, n)
	byID := make(map[string]*domain.Order, n)
	ids := make([]string, 0, n)
	for rows.Next() {
		order := &domain.Order{}
		var orderDate time.Time
		if err := rows.Scan(&order.ID, &order.Client, &order.Location.Lat, &order.Location.Lng, &orderDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.OrderDate = orderDate.UTC()
		orders = append(orders, order)
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	rows.Close()

	if len(orders) == 0 {
		return orders, nil
	}
	if err := r.loadProducts(ctx, ids, byID); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadProducts — позиции для набора заказов в исходном порядке.
func (r *OrderRepository) loadProducts(ctx context.Context, ids []string, byID map[string]*domain.Order) error {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, amount
		FROM order_products
		WHERE order_id = ANY($1::text[])
		ORDER BY order_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("select order products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var p domain.OrderProduct
		if err := rows.Scan(&orderID, &p.ID, &p.Amount); err != nil {
			return fmt.Errorf("scan order product: %w", err)
		}
		if order := byID[orderID]; order != nil {
			order.Products = append(order.Products, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("order products rows: %w", err)
	}
	return nil
}

// copyProducts — вставка позиций через COPY.
func copyProducts(ctx context.Context, tx pgx.Tx, orderID string, products []domain.OrderProduct) error {
	rows := make([][]any, 0, len(products))
	for i, p := range products {
		rows = append(rows, []any{orderID, i, p.ID, p.Amount})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"order_products"},
		[]string{"order_id", "position", "product_id", "amount"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy order products: %w", err)
	}
	return nil
}
