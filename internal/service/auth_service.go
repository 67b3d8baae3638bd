package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// AuthService coordinates the passwordless login flow and the password-based
// sign-in paths for partners and the bootstrap admin.
type AuthService struct {
	customers  repository.CustomerRepository
	partners   repository.PartnerRepository
	devices    repository.DeviceRepository
	issuer     *auth.CodeIssuer
	redeemer   *auth.CodeRedeemer
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	admin      config.AdminConfig
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	CustomerRepo repository.CustomerRepository
	PartnerRepo  repository.PartnerRepository
	DeviceRepo   repository.DeviceRepository
	Credentials  auth.CredentialStore
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		customers:  deps.CustomerRepo,
		partners:   deps.PartnerRepo,
		devices:    deps.DeviceRepo,
		issuer:     auth.NewCodeIssuer(deps.Credentials, cfg.Auth.AuthCodeTTL()),
		redeemer:   auth.NewCodeRedeemer(deps.Credentials),
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL(), cfg.Auth.CompanyClaim),
		dispatcher: deps.Dispatcher,
		admin:      cfg.Admin,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterCustomer creates a diner identity, recording the device it signed
// up from.
func (s *AuthService) RegisterCustomer(ctx context.Context, name, phone, email, userAgent string) (*domain.Customer, error) {
	if _, err := s.customers.GetByPhone(ctx, phone); err == nil {
		return nil, apperrors.NewConflict("phone already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	customer := &domain.Customer{Phone: &phone}
	if name != "" {
		customer.Name = &name
	}
	if email != "" {
		customer.Email = &email
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	if userAgent != "" {
		device := &domain.DeviceInfo{CustomerID: &customer.ID, UserAgent: &userAgent}
		if err := s.devices.Create(ctx, device); err != nil {
			return nil, err
		}
	}
	return customer, nil
}

// RequestCustomerCode looks up the diner by phone and issues a one-time
// login code bound to them. The code leaves the process only via the
// notification channel, never in the API response.
func (s *AuthService) RequestCustomerCode(ctx context.Context, phone string) error {
	customer, err := s.customers.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("customer", map[string]any{"phone": phone})
		}
		return err
	}

	code, err := s.issuer.Issue(ctx, customer.ID, domain.RoleCustomer)
	if err != nil {
		return err
	}

	return s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLoginCodeIssued,
		Timestamp: time.Now(),
		Payload: events.LoginCodeIssuedPayload{
			Phone: phone,
			Code:  code,
			Role:  domain.RoleCustomer,
		},
	})
}

// ExchangeCode redeems a one-time code for a signed session token. The code
// is destroyed on success and every later redemption fails.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (string, time.Time, error) {
	subjectID, role, err := s.redeemer.Redeem(ctx, code)
	if err != nil {
		return "", time.Time{}, err
	}
	return s.tokenMgr.Issue(subjectID, role)
}

// PartnerSignIn authenticates a restaurant operator and returns a
// role-bearing session token.
func (s *AuthService) PartnerSignIn(ctx context.Context, username, password string) (*domain.Partner, string, time.Time, error) {
	partner, err := s.partners.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !partner.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("partner inactive")
	}
	if err := auth.ComparePassword(partner.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(partner.ID, domain.RolePartner)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return partner, token, exp, nil
}

// AdminSignIn authenticates the bootstrap operator account from config.
func (s *AuthService) AdminSignIn(_ context.Context, username, password string) (string, time.Time, error) {
	if s.admin.PasswordHash == "" || username != s.admin.Username {
		return "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}
	if err := auth.ComparePassword(s.admin.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}
	return s.tokenMgr.Issue(s.admin.SubjectID, domain.RoleAdmin)
}

// TokenManager exposes the underlying token manager for context assembly.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
