package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// DeviceRepository records the devices customers register from.
type DeviceRepository interface {
	Create(ctx context.Context, device *domain.DeviceInfo) error
	ListByCustomer(ctx context.Context, customerID string) ([]domain.DeviceInfo, error)
}

type deviceRepository struct {
	pool *pgxpool.Pool
}

// NewDeviceRepository instantiates repository.
func NewDeviceRepository(pool *pgxpool.Pool) DeviceRepository {
	return &deviceRepository{pool: pool}
}

func (r *deviceRepository) Create(ctx context.Context, device *domain.DeviceInfo) error {
	const query = `
        INSERT INTO device_info (customer_id, user_agent)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		device.CustomerID,
		device.UserAgent,
	).Scan(&device.ID, &device.CreatedAt)
}

func (r *deviceRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.DeviceInfo, error) {
	const query = `
        SELECT id, customer_id, user_agent, created_at
        FROM device_info WHERE customer_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := make([]domain.DeviceInfo, 0)
	for rows.Next() {
		var device domain.DeviceInfo
		if err := rows.Scan(
			&device.ID,
			&device.CustomerID,
			&device.UserAgent,
			&device.CreatedAt,
		); err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}
	return devices, rows.Err()
}
