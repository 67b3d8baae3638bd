package dto

import "time"

// CustomerRegisterRequest payload for new diners.
type CustomerRegisterRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone" validate:"required,min=6"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CodeRequest payload asking for a one-time login code.
type CodeRequest struct {
	Phone string `json:"phone" validate:"required,min=6"`
}

// CodeExchangeRequest payload redeeming a one-time code.
type CodeExchangeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// PartnerLoginRequest payload for operator sign-in.
type PartnerLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest payload for the bootstrap operator account.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
