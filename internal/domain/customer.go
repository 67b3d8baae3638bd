package domain

import "time"

// Customer is a diner identity. Name and email are optional because
// customers sign up with just a phone number.
type Customer struct {
	ID        string
	Name      *string
	Phone     *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeviceInfo records the device a customer registered from.
type DeviceInfo struct {
	ID         string
	CustomerID *string
	UserAgent  *string
	CreatedAt  time.Time
}
