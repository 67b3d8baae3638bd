package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// PartnersHandler exposes admin-side partner provisioning.
type PartnersHandler struct {
	service *service.RestaurantService
}

// NewPartnersHandler constructs handler.
func NewPartnersHandler(restaurantService *service.RestaurantService) *PartnersHandler {
	return &PartnersHandler{service: restaurantService}
}

// CreatePartner POST /admin/partners (admin only).
func (h *PartnersHandler) CreatePartner(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	if err := sc.RequireRole(domain.RoleAdmin); err != nil {
		return err
	}

	var req dto.CreatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	partner, err := h.service.CreatePartner(c.Context(), service.PartnerCreateInput{
		Name:         req.Name,
		Username:     req.Username,
		Password:     req.Password,
		RestaurantID: req.RestaurantID,
		Picture:      req.Picture,
		Phone:        req.Phone,
		Email:        req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.PartnerResponse{
		ID:           partner.ID,
		Name:         partner.Name,
		Username:     partner.Username,
		RestaurantID: partner.RestaurantID,
		Picture:      partner.Picture,
		Phone:        partner.Phone,
		Email:        partner.Email,
		Active:       partner.Active,
	}})
}
