package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PartnerDirectory resolves the restaurant a partner operates. Zero rows are
// reported as pgx.ErrNoRows, distinct from transport errors.
type PartnerDirectory interface {
	RestaurantIDByPartner(ctx context.Context, partnerID string) (string, error)
}

// SecurityContext is the per-request bundle of verified identity plus store
// handles. It is built once before the request is routed, never persisted,
// and never shared across requests. Nil Claims means an anonymous caller,
// which is a valid request shape for public operations.
type SecurityContext struct {
	Claims   *Claims
	DB       *pgxpool.Pool
	Codes    CredentialStore
	partners PartnerDirectory
}

// ContextBuilder assembles a SecurityContext from an inbound credential.
type ContextBuilder struct {
	tokens   *TokenManager
	db       *pgxpool.Pool
	codes    CredentialStore
	partners PartnerDirectory
}

// NewContextBuilder constructs the builder with process-wide handles.
func NewContextBuilder(tokens *TokenManager, db *pgxpool.Pool, codes CredentialStore, partners PartnerDirectory) *ContextBuilder {
	return &ContextBuilder{tokens: tokens, db: db, codes: codes, partners: partners}
}

// Build verifies the optional bearer credential and attaches store handles.
// Verification failure yields an anonymous context, never a request failure.
func (b *ContextBuilder) Build(bearer string) *SecurityContext {
	sc := &SecurityContext{DB: b.db, Codes: b.codes, partners: b.partners}
	if bearer != "" {
		sc.Claims = b.tokens.Verify(bearer)
	}
	return sc
}
