package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// DishRepository encapsulates menu item persistence.
type DishRepository interface {
	Create(ctx context.Context, dish *domain.Dish) error
	GetByID(ctx context.Context, id string) (*domain.Dish, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error)
}

type dishRepository struct {
	pool *pgxpool.Pool
}

// NewDishRepository instantiates repository.
func NewDishRepository(pool *pgxpool.Pool) DishRepository {
	return &dishRepository{pool: pool}
}

func (r *dishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	const query = `
        INSERT INTO dish (name, description, price, restaurant_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		dish.Name,
		dish.Description,
		dish.Price,
		dish.RestaurantID,
	).Scan(&dish.ID, &dish.CreatedAt, &dish.UpdatedAt)
}

func (r *dishRepository) GetByID(ctx context.Context, id string) (*domain.Dish, error) {
	const query = `
        SELECT id, name, description, price, restaurant_id, created_at, updated_at
        FROM dish WHERE id=$1`

	var dish domain.Dish
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&dish.ID,
		&dish.Name,
		&dish.Description,
		&dish.Price,
		&dish.RestaurantID,
		&dish.CreatedAt,
		&dish.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	const query = `
        SELECT id, name, description, price, restaurant_id, created_at, updated_at
        FROM dish WHERE restaurant_id=$1
        ORDER BY name`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := make([]domain.Dish, 0)
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.Description,
			&dish.Price,
			&dish.RestaurantID,
			&dish.CreatedAt,
			&dish.UpdatedAt,
		); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}
