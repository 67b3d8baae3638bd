package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// DiningTableRepository encapsulates table persistence.
type DiningTableRepository interface {
	Create(ctx context.Context, table *domain.DiningTable) error
	GetByID(ctx context.Context, id string) (*domain.DiningTable, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.DiningTable, error)
}

type diningTableRepository struct {
	pool *pgxpool.Pool
}

// NewDiningTableRepository instantiates repository.
func NewDiningTableRepository(pool *pgxpool.Pool) DiningTableRepository {
	return &diningTableRepository{pool: pool}
}

func (r *diningTableRepository) Create(ctx context.Context, table *domain.DiningTable) error {
	const query = `
        INSERT INTO dining_table (name, restaurant_id)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		table.Name,
		table.RestaurantID,
	).Scan(&table.ID, &table.CreatedAt)
}

func (r *diningTableRepository) GetByID(ctx context.Context, id string) (*domain.DiningTable, error) {
	const query = `
        SELECT id, name, restaurant_id, created_at
        FROM dining_table WHERE id=$1`

	var table domain.DiningTable
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&table.ID,
		&table.Name,
		&table.RestaurantID,
		&table.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *diningTableRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.DiningTable, error) {
	const query = `
        SELECT id, name, restaurant_id, created_at
        FROM dining_table WHERE restaurant_id=$1
        ORDER BY name`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]domain.DiningTable, 0)
	for rows.Next() {
		var table domain.DiningTable
		if err := rows.Scan(
			&table.ID,
			&table.Name,
			&table.RestaurantID,
			&table.CreatedAt,
		); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}
