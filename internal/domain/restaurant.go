package domain

import "time"

// Restaurant is a venue operated by a partner.
type Restaurant struct {
	ID          string
	Name        string
	Address     string
	Logo        string
	Cover       string
	LocationURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Dish is a menu item belonging to a restaurant.
type Dish struct {
	ID           string
	Name         string
	Description  string
	Price        int32
	RestaurantID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DiningTable is a physical table within a restaurant.
type DiningTable struct {
	ID           string
	Name         string
	RestaurantID string
	CreatedAt    time.Time
}
