package domain

import "time"

// OrderStatus represents lifecycle states of a customer order.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "OPEN"
	OrderStatusClosed OrderStatus = "CLOSED"
)

// CustomerOrder is a dining session opened by a customer at a table.
// At most one OPEN order exists per customer.
type CustomerOrder struct {
	ID            string
	RestaurantID  string
	DiningTableID string
	CustomerID    string
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DishOrder is a single dish line within a customer order.
type DishOrder struct {
	ID              string
	DishID          string
	CustomerOrderID string
	Note            *string
	Quantity        int32
	CreatedAt       time.Time
}
