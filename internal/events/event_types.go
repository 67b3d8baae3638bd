package events

import (
	"time"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginCodeIssued EventType = "login_code_issued"
	EventOrderOpened     EventType = "order_opened"
	EventDishOrdered     EventType = "dish_ordered"
	EventOrderClosed     EventType = "order_closed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoginCodeIssuedPayload carries the code to the delivery channel. The code
// never travels in an API response.
type LoginCodeIssuedPayload struct {
	Phone string      `json:"phone"`
	Code  string      `json:"code"`
	Role  domain.Role `json:"role"`
}

// OrderOpenedPayload payload.
type OrderOpenedPayload struct {
	OrderID       string `json:"order_id"`
	RestaurantID  string `json:"restaurant_id"`
	DiningTableID string `json:"dining_table_id"`
	CustomerID    string `json:"customer_id"`
}

// DishOrderedPayload payload.
type DishOrderedPayload struct {
	OrderID      string `json:"order_id"`
	RestaurantID string `json:"restaurant_id"`
	DishID       string `json:"dish_id"`
	Quantity     int32  `json:"quantity"`
}

// OrderClosedPayload payload.
type OrderClosedPayload struct {
	OrderID      string `json:"order_id"`
	RestaurantID string `json:"restaurant_id"`
}
