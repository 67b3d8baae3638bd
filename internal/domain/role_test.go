package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

func TestParseRole(t *testing.T) {
	for _, name := range []string{"ADMIN", "CUSTOMER", "PARTNER"} {
		role, err := domain.ParseRole(name)
		require.NoError(t, err)
		require.True(t, role.Valid())
		require.Equal(t, name, string(role))
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "admin", "SUPERUSER", "Customer "} {
		_, err := domain.ParseRole(name)
		require.Error(t, err, "role %q", name)
	}
}
