package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// PartnerRepository defines persistence access for restaurant operators.
type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	GetByID(ctx context.Context, id string) (*domain.Partner, error)
	GetByUsername(ctx context.Context, username string) (*domain.Partner, error)
	RestaurantIDByPartner(ctx context.Context, partnerID string) (string, error)
}

type partnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository returns a Postgres-backed implementation.
func NewPartnerRepository(pool *pgxpool.Pool) PartnerRepository {
	return &partnerRepository{pool: pool}
}

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	const query = `
        INSERT INTO partner (name, username, password_hash, restaurant_id, picture, phone, email, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		partner.Name,
		partner.Username,
		partner.PasswordHash,
		partner.RestaurantID,
		partner.Picture,
		partner.Phone,
		partner.Email,
		partner.Active,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	const query = `
        SELECT id, name, username, password_hash, restaurant_id, picture, phone, email, is_active, created_at, updated_at
        FROM partner WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *partnerRepository) GetByUsername(ctx context.Context, username string) (*domain.Partner, error) {
	const query = `
        SELECT id, name, username, password_hash, restaurant_id, picture, phone, email, is_active, created_at, updated_at
        FROM partner WHERE username=$1`
	return r.scanOne(ctx, query, username)
}

// RestaurantIDByPartner is the point lookup the authorization guard uses to
// translate a partner subject into the restaurant it operates.
func (r *partnerRepository) RestaurantIDByPartner(ctx context.Context, partnerID string) (string, error) {
	const query = `
        SELECT restaurant_id
        FROM partner WHERE id=$1`

	var restaurantID string
	if err := r.pool.QueryRow(ctx, query, partnerID).Scan(&restaurantID); err != nil {
		return "", err
	}
	return restaurantID, nil
}

func (r *partnerRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Partner, error) {
	var partner domain.Partner
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&partner.ID,
		&partner.Name,
		&partner.Username,
		&partner.PasswordHash,
		&partner.RestaurantID,
		&partner.Picture,
		&partner.Phone,
		&partner.Email,
		&partner.Active,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &partner, nil
}
