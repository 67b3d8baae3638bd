package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// RequireRole checks that the caller presented claims carrying exactly the
// required role. Roles have no hierarchy: an Admin token does not pass a
// Partner check.
func (sc *SecurityContext) RequireRole(required domain.Role) error {
	if sc.Claims == nil {
		return apperrors.NewUnauthenticated("")
	}
	if sc.Claims.Role != required {
		return apperrors.NewUnauthorized("")
	}
	return nil
}

// Subject returns the caller's stable identifier.
func (sc *SecurityContext) Subject() (string, error) {
	if sc.Claims == nil {
		return "", apperrors.NewUnauthenticated("")
	}
	return sc.Claims.SubjectID, nil
}

// PartnerRestaurantID resolves the restaurant the calling partner operates.
// The partner row may have been deleted after token issuance; that stale
// identity surfaces as NOT_FOUND, not a crash.
func (sc *SecurityContext) PartnerRestaurantID(ctx context.Context) (string, error) {
	if err := sc.RequireRole(domain.RolePartner); err != nil {
		return "", err
	}
	partnerID, err := sc.Subject()
	if err != nil {
		return "", err
	}

	restaurantID, err := sc.partners.RestaurantIDByPartner(ctx, partnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("partner", map[string]any{"partner_id": partnerID})
		}
		return "", apperrors.NewStoreUnavailable(err)
	}
	return restaurantID, nil
}
