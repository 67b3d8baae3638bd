package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

type memoryCustomerRepo struct {
	byPhone map[string]*domain.Customer
	created []*domain.Customer
}

func (r *memoryCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	customer.ID = "cust-new"
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	if customer.Phone != nil {
		r.byPhone[*customer.Phone] = customer
	}
	r.created = append(r.created, customer)
	return nil
}

func (r *memoryCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	for _, customer := range r.byPhone {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryCustomerRepo) GetByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	if customer, ok := r.byPhone[phone]; ok {
		return customer, nil
	}
	return nil, pgx.ErrNoRows
}

type memoryPartnerRepo struct {
	byUsername map[string]*domain.Partner
}

func (r *memoryPartnerRepo) Create(_ context.Context, partner *domain.Partner) error {
	partner.ID = "partner-new"
	r.byUsername[partner.Username] = partner
	return nil
}

func (r *memoryPartnerRepo) GetByID(_ context.Context, id string) (*domain.Partner, error) {
	for _, partner := range r.byUsername {
		if partner.ID == id {
			return partner, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryPartnerRepo) GetByUsername(_ context.Context, username string) (*domain.Partner, error) {
	if partner, ok := r.byUsername[username]; ok {
		return partner, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryPartnerRepo) RestaurantIDByPartner(_ context.Context, partnerID string) (string, error) {
	for _, partner := range r.byUsername {
		if partner.ID == partnerID {
			return partner.RestaurantID, nil
		}
	}
	return "", pgx.ErrNoRows
}

type memoryDeviceRepo struct {
	created []*domain.DeviceInfo
}

func (r *memoryDeviceRepo) Create(_ context.Context, device *domain.DeviceInfo) error {
	device.ID = "device-new"
	r.created = append(r.created, device)
	return nil
}

func (r *memoryDeviceRepo) ListByCustomer(_ context.Context, _ string) ([]domain.DeviceInfo, error) {
	return nil, nil
}

type memoryCredentialStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryCredentialStore() *memoryCredentialStore {
	return &memoryCredentialStore{values: make(map[string][]byte)}
}

func (s *memoryCredentialStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryCredentialStore) GetDel(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	delete(s.values, key)
	return value, nil
}

type captureDispatcher struct {
	published []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *captureDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	adminHash, err := auth.HashPassword("admin-secret", 4)
	require.NoError(t, err)
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			SessionTTLHours:    24,
			AuthCodeTTLSeconds: 3600,
			BcryptCost:         4,
			CompanyClaim:       "RRMDN",
		},
		Admin: config.AdminConfig{
			Username:     "admin",
			PasswordHash: adminHash,
			SubjectID:    "admin",
		},
	}
}

func newAuthService(t *testing.T) (*service.AuthService, *memoryCustomerRepo, *memoryPartnerRepo, *captureDispatcher) {
	t.Helper()
	phone := "+62811111111"
	customers := &memoryCustomerRepo{byPhone: map[string]*domain.Customer{
		phone: {ID: "cust-001", Phone: &phone},
	}}
	partners := &memoryPartnerRepo{byUsername: map[string]*domain.Partner{}}
	dispatcher := &captureDispatcher{}

	svc := service.NewAuthService(testConfig(t), service.AuthDependencies{
		CustomerRepo: customers,
		PartnerRepo:  partners,
		DeviceRepo:   &memoryDeviceRepo{},
		Credentials:  newMemoryCredentialStore(),
		Dispatcher:   dispatcher,
	})
	return svc, customers, partners, dispatcher
}

func TestRequestCustomerCodePublishesEvent(t *testing.T) {
	svc, _, _, dispatcher := newAuthService(t)

	require.NoError(t, svc.RequestCustomerCode(context.Background(), "+62811111111"))
	require.Len(t, dispatcher.published, 1)

	event := dispatcher.published[0]
	require.Equal(t, events.EventLoginCodeIssued, event.Type)
	payload, ok := event.Payload.(events.LoginCodeIssuedPayload)
	require.True(t, ok)
	require.Len(t, payload.Code, 6)
	require.Equal(t, domain.RoleCustomer, payload.Role)
}

func TestRequestCustomerCodeUnknownPhone(t *testing.T) {
	svc, _, _, _ := newAuthService(t)

	err := svc.RequestCustomerCode(context.Background(), "+62899999999")
	require.True(t, apperrors.HasCode(err, "NOT_FOUND"))
}

func TestCodeExchangeFlow(t *testing.T) {
	svc, _, _, dispatcher := newAuthService(t)

	require.NoError(t, svc.RequestCustomerCode(context.Background(), "+62811111111"))
	code := dispatcher.published[0].Payload.(events.LoginCodeIssuedPayload).Code

	token, expiresAt, err := svc.ExchangeCode(context.Background(), code)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims := svc.TokenManager().Verify(token)
	require.NotNil(t, claims)
	require.Equal(t, "cust-001", claims.SubjectID)
	require.Equal(t, domain.RoleCustomer, claims.Role)

	// the code is destroyed on redemption
	_, _, err = svc.ExchangeCode(context.Background(), code)
	require.True(t, apperrors.HasCode(err, "CODE_INVALID"))
}

func TestPartnerSignIn(t *testing.T) {
	svc, _, partners, _ := newAuthService(t)

	hash, err := auth.HashPassword("hunter2secret", 4)
	require.NoError(t, err)
	partners.byUsername["warung"] = &domain.Partner{
		ID:           "partner-1",
		Username:     "warung",
		PasswordHash: hash,
		RestaurantID: "resto-9",
		Active:       true,
	}

	partner, token, _, err := svc.PartnerSignIn(context.Background(), "warung", "hunter2secret")
	require.NoError(t, err)
	require.Equal(t, "partner-1", partner.ID)

	claims := svc.TokenManager().Verify(token)
	require.NotNil(t, claims)
	require.Equal(t, domain.RolePartner, claims.Role)
	require.Equal(t, "partner-1", claims.SubjectID)
}

func TestPartnerSignInRejectsBadCredentials(t *testing.T) {
	svc, _, partners, _ := newAuthService(t)

	hash, err := auth.HashPassword("hunter2secret", 4)
	require.NoError(t, err)
	partners.byUsername["warung"] = &domain.Partner{
		ID:           "partner-1",
		Username:     "warung",
		PasswordHash: hash,
		Active:       true,
	}

	_, _, _, err = svc.PartnerSignIn(context.Background(), "warung", "wrong")
	require.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))

	_, _, _, err = svc.PartnerSignIn(context.Background(), "ghost", "hunter2secret")
	require.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestPartnerSignInRejectsInactive(t *testing.T) {
	svc, _, partners, _ := newAuthService(t)

	hash, err := auth.HashPassword("hunter2secret", 4)
	require.NoError(t, err)
	partners.byUsername["warung"] = &domain.Partner{
		ID:           "partner-1",
		Username:     "warung",
		PasswordHash: hash,
		Active:       false,
	}

	_, _, _, err = svc.PartnerSignIn(context.Background(), "warung", "hunter2secret")
	require.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestAdminSignIn(t *testing.T) {
	svc, _, _, _ := newAuthService(t)

	token, _, err := svc.AdminSignIn(context.Background(), "admin", "admin-secret")
	require.NoError(t, err)

	claims := svc.TokenManager().Verify(token)
	require.NotNil(t, claims)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.Equal(t, "admin", claims.SubjectID)

	_, _, err = svc.AdminSignIn(context.Background(), "admin", "wrong")
	require.True(t, apperrors.HasCode(err, "UNAUTHENTICATED"))
}

func TestRegisterCustomer(t *testing.T) {
	svc, customers, _, _ := newAuthService(t)

	customer, err := svc.RegisterCustomer(context.Background(), "Budi", "+62822222222", "budi@example.com", "test-agent/1.0")
	require.NoError(t, err)
	require.NotEmpty(t, customer.ID)
	require.Len(t, customers.created, 1)

	_, err = svc.RegisterCustomer(context.Background(), "Budi", "+62822222222", "", "")
	require.True(t, apperrors.HasCode(err, "CONFLICT"))
}

func TestRegisterCustomerConflictIsNotTransportError(t *testing.T) {
	svc, _, _, _ := newAuthService(t)

	_, err := svc.RegisterCustomer(context.Background(), "", "+62811111111", "", "")
	require.True(t, apperrors.HasCode(err, "CONFLICT"))
	require.False(t, errors.Is(err, pgx.ErrNoRows))
}
