package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

type fakePartnerDirectory struct {
	restaurants map[string]string
	err         error
}

func (f *fakePartnerDirectory) RestaurantIDByPartner(_ context.Context, partnerID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id, ok := f.restaurants[partnerID]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return id, nil
}

func newBuilder(t *testing.T, directory auth.PartnerDirectory) (*auth.ContextBuilder, *auth.TokenManager) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", 24*time.Hour, "RRMDN")
	return auth.NewContextBuilder(tokens, nil, newMemoryCredentialStore(), directory), tokens
}

func tokenFor(t *testing.T, tokens *auth.TokenManager, subjectID string, role domain.Role) string {
	t.Helper()
	token, _, err := tokens.Issue(subjectID, role)
	require.NoError(t, err)
	return token
}

func TestBuildWithoutCredentialIsAnonymous(t *testing.T) {
	builder, _ := newBuilder(t, &fakePartnerDirectory{})

	sc := builder.Build("")
	require.Nil(t, sc.Claims)

	err := sc.RequireRole(domain.RolePartner)
	require.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))

	_, err = sc.Subject()
	require.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestBuildWithInvalidCredentialIsAnonymous(t *testing.T) {
	builder, _ := newBuilder(t, &fakePartnerDirectory{})

	sc := builder.Build("not-a-real-token")
	require.Nil(t, sc.Claims)
}

func TestRequireRoleMatrix(t *testing.T) {
	builder, tokens := newBuilder(t, &fakePartnerDirectory{})
	roles := []domain.Role{domain.RoleAdmin, domain.RoleCustomer, domain.RolePartner}

	for _, held := range roles {
		sc := builder.Build(tokenFor(t, tokens, "subject-1", held))
		require.NotNil(t, sc.Claims)

		for _, required := range roles {
			err := sc.RequireRole(required)
			if held == required {
				require.NoError(t, err, "%s vs %s", held, required)
			} else {
				require.True(t, apperrors.HasCode(err, "UNAUTHORIZED"), "%s vs %s", held, required)
			}
		}
	}
}

func TestSubjectReturnsClaimsSubject(t *testing.T) {
	builder, tokens := newBuilder(t, &fakePartnerDirectory{})

	sc := builder.Build(tokenFor(t, tokens, "cust-001", domain.RoleCustomer))
	subject, err := sc.Subject()
	require.NoError(t, err)
	require.Equal(t, "cust-001", subject)
}

func TestPartnerRestaurantID(t *testing.T) {
	directory := &fakePartnerDirectory{restaurants: map[string]string{"partner-1": "resto-9"}}
	builder, tokens := newBuilder(t, directory)

	sc := builder.Build(tokenFor(t, tokens, "partner-1", domain.RolePartner))
	restaurantID, err := sc.PartnerRestaurantID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "resto-9", restaurantID)
}

func TestPartnerRestaurantIDStaleIdentity(t *testing.T) {
	builder, tokens := newBuilder(t, &fakePartnerDirectory{restaurants: map[string]string{}})

	// partner row deleted after the token was issued
	sc := builder.Build(tokenFor(t, tokens, "partner-gone", domain.RolePartner))
	_, err := sc.PartnerRestaurantID(context.Background())
	require.True(t, apperrors.HasCode(err, "NOT_FOUND"))
}

func TestPartnerRestaurantIDRequiresPartnerRole(t *testing.T) {
	builder, tokens := newBuilder(t, &fakePartnerDirectory{})

	sc := builder.Build(tokenFor(t, tokens, "cust-001", domain.RoleCustomer))
	_, err := sc.PartnerRestaurantID(context.Background())
	require.True(t, apperrors.HasCode(err, "UNAUTHORIZED"))

	sc = builder.Build("")
	_, err = sc.PartnerRestaurantID(context.Background())
	require.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestPartnerRestaurantIDTransportError(t *testing.T) {
	builder, tokens := newBuilder(t, &fakePartnerDirectory{err: errors.New("connection reset")})

	sc := builder.Build(tokenFor(t, tokens, "partner-1", domain.RolePartner))
	_, err := sc.PartnerRestaurantID(context.Background())
	require.True(t, apperrors.HasCode(err, "STORE_UNAVAILABLE"))
}
