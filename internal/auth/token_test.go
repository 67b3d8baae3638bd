package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", 24*time.Hour, "RRMDN")

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleCustomer, domain.RolePartner} {
		token, expiresAt, err := manager.Issue("subject-1", role)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

		claims := manager.Verify(token)
		require.NotNil(t, claims)
		require.Equal(t, "subject-1", claims.SubjectID)
		require.Equal(t, role, claims.Role)
		require.Equal(t, "RRMDN", claims.Company)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", 24*time.Hour, "RRMDN")

	token, _, err := manager.Issue("cust-001", domain.RoleCustomer)
	require.NoError(t, err)

	// flipping any byte must invalidate the signature
	for _, i := range []int{0, len(token) / 2, len(token) - 1} {
		tampered := []byte(token)
		tampered[i] ^= 0x01
		require.Nil(t, manager.Verify(string(tampered)), "byte %d", i)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", 24*time.Hour, "RRMDN")
	verifier := auth.NewTokenManager("secret-b", 24*time.Hour, "RRMDN")

	token, _, err := issuer.Issue("cust-001", domain.RoleCustomer)
	require.NoError(t, err)
	require.Nil(t, verifier.Verify(token))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	manager := auth.NewTokenManager(secret, 24*time.Hour, "RRMDN")

	// correctly signed token whose expiry is already in the past
	claims := &auth.Claims{
		SubjectID: "cust-001",
		Role:      domain.RoleCustomer,
		Company:   "RRMDN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "cust-001",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	require.Nil(t, manager.Verify(token))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", 24*time.Hour, "RRMDN")

	require.Nil(t, manager.Verify(""))
	require.Nil(t, manager.Verify("not-a-token"))
	require.Nil(t, manager.Verify("a.b.c"))
}
