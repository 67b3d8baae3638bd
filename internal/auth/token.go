package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// TokenManager issues and verifies signed session tokens. The signing secret
// is injected at construction and shared read-only for the process lifetime.
type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	company string
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration, company string) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, company: company}
}

// Claims describes the session token payload.
type Claims struct {
	SubjectID string      `json:"sub"`
	Role      domain.Role `json:"role"`
	Company   string      `json:"company"`
	jwt.RegisteredClaims
}

// Issue builds and signs a session token for the subject. It fails only on a
// signing-library error.
func (tm *TokenManager) Issue(subjectID string, role domain.Role) (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.ttl)
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		Company:   tm.company,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry and returns the claims, or nil on any
// failure. A malformed, expired or mis-signed bearer credential is a normal
// condition on every request, so it downgrades to "no identity" rather than
// surfacing an error.
func (tm *TokenManager) Verify(tokenStr string) *Claims {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || !claims.Role.Valid() {
		return nil
	}
	return claims
}
