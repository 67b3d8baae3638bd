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

// RestaurantsHandler exposes venue, menu and table endpoints. Reads are
// public; creation is gated on the caller's role before any data access.
type RestaurantsHandler struct {
	service *service.RestaurantService
}

// NewRestaurantsHandler constructs handler.
func NewRestaurantsHandler(restaurantService *service.RestaurantService) *RestaurantsHandler {
	return &RestaurantsHandler{service: restaurantService}
}

// CreateRestaurant POST /restaurants (admin only).
func (h *RestaurantsHandler) CreateRestaurant(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	if err := sc.RequireRole(domain.RoleAdmin); err != nil {
		return err
	}

	var req dto.CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	restaurant, err := h.service.CreateRestaurant(c.Context(), service.RestaurantCreateInput{
		Name:        req.Name,
		Address:     req.Address,
		Logo:        req.Logo,
		Cover:       req.Cover,
		LocationURL: req.LocationURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": restaurantResponse(restaurant)})
}

// ListRestaurants GET /restaurants.
func (h *RestaurantsHandler) ListRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.ListRestaurants(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	items := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		items = append(items, restaurantResponse(&restaurants[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetRestaurant GET /restaurants/:id.
func (h *RestaurantsHandler) GetRestaurant(c *fiber.Ctx) error {
	restaurant, err := h.service.GetRestaurant(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": restaurantResponse(restaurant)})
}

// ListRestaurantTables GET /restaurants/:id/tables.
func (h *RestaurantsHandler) ListRestaurantTables(c *fiber.Ctx) error {
	tables, err := h.service.ListDiningTables(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.DiningTableResponse, 0, len(tables))
	for i := range tables {
		items = append(items, diningTableResponse(&tables[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListRestaurantDishes GET /restaurants/:id/dishes.
func (h *RestaurantsHandler) ListRestaurantDishes(c *fiber.Ctx) error {
	dishes, err := h.service.ListDishes(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		items = append(items, dishResponse(&dishes[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetDish GET /dishes/:id.
func (h *RestaurantsHandler) GetDish(c *fiber.Ctx) error {
	dish, err := h.service.GetDish(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dishResponse(dish)})
}

// GetDiningTable GET /tables/:id.
func (h *RestaurantsHandler) GetDiningTable(c *fiber.Ctx) error {
	table, err := h.service.GetDiningTable(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": diningTableResponse(table)})
}

// GetPartnerRestaurant GET /partner/restaurant.
func (h *RestaurantsHandler) GetPartnerRestaurant(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	restaurantID, err := sc.PartnerRestaurantID(c.Context())
	if err != nil {
		return err
	}
	restaurant, err := h.service.GetRestaurant(c.Context(), restaurantID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": restaurantResponse(restaurant)})
}

// CreatePartnerDish POST /partner/dishes.
func (h *RestaurantsHandler) CreatePartnerDish(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	restaurantID, err := sc.PartnerRestaurantID(c.Context())
	if err != nil {
		return err
	}

	var req dto.CreateDishRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	dish, err := h.service.CreateDish(c.Context(), restaurantID, req.Name, req.Description, req.Price)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dishResponse(dish)})
}

// CreatePartnerTable POST /partner/tables.
func (h *RestaurantsHandler) CreatePartnerTable(c *fiber.Ctx) error {
	sc := auth.SecurityContextFrom(c)
	restaurantID, err := sc.PartnerRestaurantID(c.Context())
	if err != nil {
		return err
	}

	var req dto.CreateDiningTableRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := Validate.Struct(&req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	table, err := h.service.CreateDiningTable(c.Context(), restaurantID, req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": diningTableResponse(table)})
}

func restaurantResponse(r *domain.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Logo:        r.Logo,
		Cover:       r.Cover,
		LocationURL: r.LocationURL,
		CreatedAt:   r.CreatedAt,
	}
}

func dishResponse(d *domain.Dish) dto.DishResponse {
	return dto.DishResponse{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		RestaurantID: d.RestaurantID,
	}
}

func diningTableResponse(t *domain.DiningTable) dto.DiningTableResponse {
	return dto.DiningTableResponse{
		ID:           t.ID,
		Name:         t.Name,
		RestaurantID: t.RestaurantID,
	}
}
