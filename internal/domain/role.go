package domain

import "fmt"

// Role identifies what kind of caller a session token represents.
// Roles are compared for equality only; there is no hierarchy between them.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
	RolePartner  Role = "PARTNER"
)

// ParseRole validates a stored or transmitted role value.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleCustomer, RolePartner:
		return Role(value), nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
