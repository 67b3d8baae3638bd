package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// memoryCredentialStore mimics the Redis credential store: per-key TTL and an
// atomic get-and-delete. The clock is injectable so expiry is testable.
type memoryCredentialStore struct {
	mu      sync.Mutex
	values  map[string][]byte
	expires map[string]time.Time
	now     func() time.Time
	failing bool
}

func newMemoryCredentialStore() *memoryCredentialStore {
	return &memoryCredentialStore{
		values:  make(map[string][]byte),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memoryCredentialStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.failing {
		return errors.New("connection refused")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.expires[key] = s.now().Add(ttl)
	return nil
}

func (s *memoryCredentialStore) GetDel(_ context.Context, key string) ([]byte, error) {
	if s.failing {
		return nil, errors.New("connection refused")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok || s.now().After(s.expires[key]) {
		delete(s.values, key)
		delete(s.expires, key)
		return nil, nil
	}
	delete(s.values, key)
	delete(s.expires, key)
	return value, nil
}

func (s *memoryCredentialStore) seed(code, subjectID string, role domain.Role) {
	payload, _ := json.Marshal(domain.AuthCode{ClientID: subjectID, Role: role})
	_ = s.SetWithTTL(context.Background(), code, payload, time.Hour)
}

func TestIssueProducesSixDigitCode(t *testing.T) {
	store := newMemoryCredentialStore()
	issuer := auth.NewCodeIssuer(store, time.Hour)

	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)
	for i := 0; i < 50; i++ {
		code, err := issuer.Issue(context.Background(), "cust-001", domain.RoleCustomer)
		require.NoError(t, err)
		require.Regexp(t, pattern, code)
	}
}

func TestRedeemIsSingleUse(t *testing.T) {
	store := newMemoryCredentialStore()
	redeemer := auth.NewCodeRedeemer(store)
	store.seed("482913", "cust-001", domain.RoleCustomer)

	subjectID, role, err := redeemer.Redeem(context.Background(), "482913")
	require.NoError(t, err)
	require.Equal(t, "cust-001", subjectID)
	require.Equal(t, domain.RoleCustomer, role)

	_, _, err = redeemer.Redeem(context.Background(), "482913")
	require.True(t, apperrors.HasCode(err, "CODE_INVALID"))
}

func TestRedeemUnknownCode(t *testing.T) {
	redeemer := auth.NewCodeRedeemer(newMemoryCredentialStore())

	_, _, err := redeemer.Redeem(context.Background(), "123456")
	require.True(t, apperrors.HasCode(err, "CODE_INVALID"))
}

func TestRedeemExpiredCode(t *testing.T) {
	store := newMemoryCredentialStore()
	issuer := auth.NewCodeIssuer(store, time.Hour)
	redeemer := auth.NewCodeRedeemer(store)

	code, err := issuer.Issue(context.Background(), "cust-001", domain.RoleCustomer)
	require.NoError(t, err)

	// an expired code is indistinguishable from a never-issued one
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, _, err = redeemer.Redeem(context.Background(), code)
	require.True(t, apperrors.HasCode(err, "CODE_INVALID"))
}

func TestConcurrentRedeemExactlyOneWins(t *testing.T) {
	store := newMemoryCredentialStore()
	redeemer := auth.NewCodeRedeemer(store)
	store.seed("777001", "cust-001", domain.RoleCustomer)

	const redeemers = 32
	var wg sync.WaitGroup
	results := make(chan error, redeemers)
	start := make(chan struct{})

	for i := 0; i < redeemers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, _, err := redeemer.Redeem(context.Background(), "777001")
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			require.True(t, apperrors.HasCode(err, "CODE_INVALID"))
		}
	}
	require.Equal(t, 1, successes)
}

func TestRedeemCorruptRecord(t *testing.T) {
	store := newMemoryCredentialStore()
	redeemer := auth.NewCodeRedeemer(store)
	require.NoError(t, store.SetWithTTL(context.Background(), "999999", []byte("{not json"), time.Hour))

	_, _, err := redeemer.Redeem(context.Background(), "999999")
	require.True(t, apperrors.HasCode(err, "CORRUPT_RECORD"))
}

func TestRedeemUnknownRoleIsCorrupt(t *testing.T) {
	store := newMemoryCredentialStore()
	redeemer := auth.NewCodeRedeemer(store)
	require.NoError(t, store.SetWithTTL(context.Background(), "999998", []byte(`{"client_id":"x","role":"SUPERUSER"}`), time.Hour))

	_, _, err := redeemer.Redeem(context.Background(), "999998")
	require.True(t, apperrors.HasCode(err, "CORRUPT_RECORD"))
}

func TestStoreUnavailable(t *testing.T) {
	store := newMemoryCredentialStore()
	store.failing = true
	issuer := auth.NewCodeIssuer(store, time.Hour)
	redeemer := auth.NewCodeRedeemer(store)

	_, err := issuer.Issue(context.Background(), "cust-001", domain.RoleCustomer)
	require.True(t, apperrors.HasCode(err, "STORE_UNAVAILABLE"))

	_, _, err = redeemer.Redeem(context.Background(), "123456")
	require.True(t, apperrors.HasCode(err, "STORE_UNAVAILABLE"))
}

func TestIssueOverwritesColliding(t *testing.T) {
	store := newMemoryCredentialStore()
	redeemer := auth.NewCodeRedeemer(store)
	store.seed("555123", "cust-old", domain.RoleCustomer)
	store.seed("555123", "cust-new", domain.RoleCustomer)

	subjectID, _, err := redeemer.Redeem(context.Background(), "555123")
	require.NoError(t, err)
	require.Equal(t, "cust-new", subjectID)
}
