package dto

import "time"

// OpenOrderRequest payload starting a dining session.
type OpenOrderRequest struct {
	DiningTableID string `json:"dining_table_id" validate:"required,uuid"`
}

// AddDishOrderRequest payload appending a dish line.
type AddDishOrderRequest struct {
	DishID   string  `json:"dish_id" validate:"required,uuid"`
	Quantity int32   `json:"quantity" validate:"required,gt=0"`
	Note     *string `json:"note"`
}

// DishOrderResponse payload.
type DishOrderResponse struct {
	ID              string  `json:"id"`
	DishID          string  `json:"dish_id"`
	CustomerOrderID string  `json:"customer_order_id"`
	Note            *string `json:"note"`
	Quantity        int32   `json:"quantity"`
}

// OrderResponse payload.
type OrderResponse struct {
	ID            string              `json:"id"`
	RestaurantID  string              `json:"restaurant_id"`
	DiningTableID string              `json:"dining_table_id"`
	CustomerID    string              `json:"customer_id"`
	Status        string              `json:"status"`
	Dishes        []DishOrderResponse `json:"dishes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}
