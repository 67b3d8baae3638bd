package domain

import "time"

// Partner is a restaurant operator identity.
type Partner struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string
	RestaurantID string
	Picture      string
	Phone        string
	Email        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
