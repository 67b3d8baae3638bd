package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// OrderRepository encapsulates customer order and dish line persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.CustomerOrder) error
	GetByID(ctx context.Context, id string) (*domain.CustomerOrder, error)
	GetOpenByCustomer(ctx context.Context, customerID string) (*domain.CustomerOrder, error)
	ListByRestaurant(ctx context.Context, restaurantID string, status *domain.OrderStatus) ([]domain.CustomerOrder, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	AddDishOrder(ctx context.Context, line *domain.DishOrder) error
	ListDishOrders(ctx context.Context, orderID string) ([]domain.DishOrder, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.CustomerOrder) error {
	const query = `
        INSERT INTO customer_order (restaurant_id, dining_table_id, customer_id, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		order.RestaurantID,
		order.DiningTableID,
		order.CustomerID,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.CustomerOrder, error) {
	const query = `
        SELECT id, restaurant_id, dining_table_id, customer_id, status, created_at, updated_at
        FROM customer_order WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *orderRepository) GetOpenByCustomer(ctx context.Context, customerID string) (*domain.CustomerOrder, error) {
	const query = `
        SELECT id, restaurant_id, dining_table_id, customer_id, status, created_at, updated_at
        FROM customer_order WHERE customer_id=$1 AND status=$2`
	return r.scanOne(ctx, query, customerID, domain.OrderStatusOpen)
}

func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID string, status *domain.OrderStatus) ([]domain.CustomerOrder, error) {
	query := `
        SELECT id, restaurant_id, dining_table_id, customer_id, status, created_at, updated_at
        FROM customer_order WHERE restaurant_id=$1`
	args := []any{restaurantID}
	if status != nil {
		query += ` AND status=$2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.CustomerOrder, 0)
	for rows.Next() {
		var order domain.CustomerOrder
		if err := rows.Scan(
			&order.ID,
			&order.RestaurantID,
			&order.DiningTableID,
			&order.CustomerID,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	const query = `
        UPDATE customer_order SET status=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) AddDishOrder(ctx context.Context, line *domain.DishOrder) error {
	const query = `
        INSERT INTO dish_order (dish_id, customer_order_id, note, quantity)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		line.DishID,
		line.CustomerOrderID,
		line.Note,
		line.Quantity,
	).Scan(&line.ID, &line.CreatedAt)
}

func (r *orderRepository) ListDishOrders(ctx context.Context, orderID string) ([]domain.DishOrder, error) {
	const query = `
        SELECT id, dish_id, customer_order_id, note, quantity, created_at
        FROM dish_order WHERE customer_order_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.DishOrder, 0)
	for rows.Next() {
		var line domain.DishOrder
		if err := rows.Scan(
			&line.ID,
			&line.DishID,
			&line.CustomerOrderID,
			&line.Note,
			&line.Quantity,
			&line.CreatedAt,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *orderRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.CustomerOrder, error) {
	var order domain.CustomerOrder
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&order.ID,
		&order.RestaurantID,
		&order.DiningTableID,
		&order.CustomerID,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}
