package domain

// AuthCode is the value stored against a pending one-time login code.
// The record lives in the credential store only and is destroyed on
// redemption.
type AuthCode struct {
	ClientID string `json:"client_id"`
	Role     Role   `json:"role"`
}
