package dto

import "time"

// CreateRestaurantRequest payload.
type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Logo        string `json:"logo"`
	Cover       string `json:"cover"`
	LocationURL string `json:"location_url" validate:"omitempty,url"`
}

// RestaurantResponse payload.
type RestaurantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Logo        string    `json:"logo"`
	Cover       string    `json:"cover"`
	LocationURL string    `json:"location_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateDishRequest payload.
type CreateDishRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int32  `json:"price" validate:"required,gt=0"`
}

// DishResponse payload.
type DishResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int32  `json:"price"`
	RestaurantID string `json:"restaurant_id"`
}

// CreateDiningTableRequest payload.
type CreateDiningTableRequest struct {
	Name string `json:"name" validate:"required"`
}

// DiningTableResponse payload.
type DiningTableResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RestaurantID string `json:"restaurant_id"`
}

// CreatePartnerRequest payload for provisioning operators.
type CreatePartnerRequest struct {
	Name         string `json:"name" validate:"required"`
	Username     string `json:"username" validate:"required,min=3"`
	Password     string `json:"password" validate:"required,min=8"`
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	Picture      string `json:"picture"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
}

// PartnerResponse payload.
type PartnerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	RestaurantID string `json:"restaurant_id"`
	Picture      string `json:"picture"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Active       bool   `json:"is_active"`
}
