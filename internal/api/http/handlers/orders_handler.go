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

// OrdersHandler exposes customer dining sessions and the partner's order
// views. Every route checks the caller's role before touching data.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// CurrentOrder GET /orders/current (customer only).
func (h *OrdersHandler) CurrentOrder(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	if err := sc.RequireRole(domain.RoleCustomer); err != nil {
		return err
	}
	customerID, err := sc.Subject()
	if err != nil {
		return err
	}

	order, lines, err := h.service.CurrentOrder(c.Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(order, lines)})
}

// OpenOrder POST /orders (customer only).
func (h *OrdersHandler) OpenOrder(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	if err := sc.RequireRole(domain.RoleCustomer); err != nil {
		return err
	}
	customerID, err := sc.Subject()
	if err != nil {
		return err
	}

	var req dto.OpenOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	order, err := h.service.OpenOrder(c.Context(), customerID, req.DiningTableID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderResponse(order, nil)})
}

// AddDish POST /orders/current/dishes (customer only).
func (h *OrdersHandler) AddDish(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	if err := sc.RequireRole(domain.RoleCustomer); err != nil {
		return err
	}
	customerID, err := sc.Subject()
	if err != nil {
		return err
	}

	var req dto.AddDishOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	line, err := h.service.AddDishOrder(c.Context(), customerID, req.DishID, req.Quantity, req.Note)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dishOrderResponse(line)})
}

// ListPartnerOrders GET /partner/orders (partner only, own restaurant).
func (h *OrdersHandler) ListPartnerOrders(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	restaurantID, err := sc.PartnerRestaurantID(c.Context())
	if err != nil {
		return err
	}

	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		parsed := domain.OrderStatus(raw)
		if parsed != domain.OrderStatusOpen && parsed != domain.OrderStatusClosed {
			return apperrors.NewValidationError("invalid status filter", map[string]any{"status": raw})
		}
		status = &parsed
	}

	orders, err := h.service.ListRestaurantOrders(c.Context(), restaurantID, status)
	if err != nil {
		return err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, orderResponse(&orders[i], nil))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ClosePartnerOrder POST /partner/orders/:id/close (partner only, own restaurant).
func (h *OrdersHandler) ClosePartnerOrder(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	restaurantID, err := sc.PartnerRestaurantID(c.Context())
	if err != nil {
		return err
	}

	order, err := h.service.CloseOrder(c.Context(), restaurantID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(order, nil)})
}

func orderResponse(order *domain.CustomerOrder, lines []domain.DishOrder) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            order.ID,
		RestaurantID:  order.RestaurantID,
		DiningTableID: order.DiningTableID,
		CustomerID:    order.CustomerID,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
	for i := range lines {
		resp.Dishes = append(resp.Dishes, dishOrderResponse(&lines[i]))
	}
	return resp
}

func dishOrderResponse(line *domain.DishOrder) dto.DishOrderResponse {
	return dto.DishOrderResponse{
		ID:              line.ID,
		DishID:          line.DishID,
		CustomerOrderID: line.CustomerOrderID,
		Note:            line.Note,
		Quantity:        line.Quantity,
	}
}
