package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// AuthHandler exposes the passwordless login flow and the password sign-in
// paths. All routes here are public: identity is established, not required.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// RegisterCustomer handles POST /auth/customers/register.
func (h *AuthHandler) RegisterCustomer(c *fiber.Ctx) error {
	var req dto.CustomerRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	customer, err := h.auth.RegisterCustomer(c.Context(), req.Name, req.Phone, req.Email, c.Get("User-Agent"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":    customer.ID,
			"name":  customer.Name,
			"phone": customer.Phone,
			"email": customer.Email,
		},
	})
}

// RequestCode handles POST /auth/code/request. The response never carries
// the code; it is delivered out of band.
func (h *AuthHandler) RequestCode(c *fiber.Ctx) error {
	var req dto.CodeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	if err := h.auth.RequestCustomerCode(c.Context(), req.Phone); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "requested"}})
}

// ExchangeCode handles POST /auth/code/exchange.
func (h *AuthHandler) ExchangeCode(c *fiber.Ctx) error {
	var req dto.CodeExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	token, exp, err := h.auth.ExchangeCode(c.Context(), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: token, ExpiresAt: exp}})
}

// PartnerLogin handles POST /auth/partners/login.
func (h *AuthHandler) PartnerLogin(c *fiber.Ctx) error {
	var req dto.PartnerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	partner, token, exp, err := h.auth.PartnerSignIn(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"partner": fiber.Map{
				"id":            partner.ID,
				"name":          partner.Name,
				"restaurant_id": partner.RestaurantID,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// AdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	token, exp, err := h.auth.AdminSignIn(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: token, ExpiresAt: exp}})
}
