package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/spec-kit/restaurant-service/internal/domain"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// CredentialStore is the ephemeral key-value store holding pending one-time
// codes. Implementations must make GetDel a single atomic operation so
// concurrent redemptions of the same code cannot both succeed; a missing key
// yields (nil, nil).
type CredentialStore interface {
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetDel(ctx context.Context, key string) ([]byte, error)
}

// CodeIssuer generates one-time login codes and persists them with a bounded
// lifetime.
type CodeIssuer struct {
	store CredentialStore
	ttl   time.Duration
}

// NewCodeIssuer builds an issuer. ttl defaults to one hour.
func NewCodeIssuer(store CredentialStore, ttl time.Duration) *CodeIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CodeIssuer{store: store, ttl: ttl}
}

// Issue draws a uniform 6-digit code, binds it to the subject and role, and
// stores it. A collision with a live code silently overwrites the older
// pending code, invalidating it early; this is accepted rather than checked.
func (i *CodeIssuer) Issue(ctx context.Context, subjectID string, role domain.Role) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	payload, err := json.Marshal(domain.AuthCode{ClientID: subjectID, Role: role})
	if err != nil {
		return "", apperrors.NewCorruptRecord(err)
	}

	if err := i.store.SetWithTTL(ctx, code, payload, i.ttl); err != nil {
		return "", apperrors.NewStoreUnavailable(err)
	}
	return code, nil
}

// CodeRedeemer exchanges a one-time code for the bound subject, destroying
// the code so it cannot be redeemed again.
type CodeRedeemer struct {
	store CredentialStore
}

// NewCodeRedeemer builds a redeemer over the same store as the issuer.
func NewCodeRedeemer(store CredentialStore) *CodeRedeemer {
	return &CodeRedeemer{store: store}
}

// Redeem atomically reads and invalidates the code. A code that was never
// issued, has expired, or was already redeemed fails with CODE_INVALID; an
// undecodable stored value is a CORRUPT_RECORD integrity failure.
func (r *CodeRedeemer) Redeem(ctx context.Context, code string) (string, domain.Role, error) {
	payload, err := r.store.GetDel(ctx, code)
	if err != nil {
		return "", "", apperrors.NewStoreUnavailable(err)
	}
	if payload == nil {
		return "", "", apperrors.NewCodeInvalid()
	}

	var record domain.AuthCode
	if err := json.Unmarshal(payload, &record); err != nil {
		return "", "", apperrors.NewCorruptRecord(err)
	}
	if !record.Role.Valid() {
		return "", "", apperrors.NewCorruptRecord(fmt.Errorf("unknown role %q", record.Role))
	}
	return record.ClientID, record.Role, nil
}

// randomCode draws uniformly from 100000-999999.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
