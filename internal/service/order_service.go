package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// OrderService manages dining sessions and dish lines.
type OrderService struct {
	orders     repository.OrderRepository
	tables     repository.DiningTableRepository
	dishes     repository.DishRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, tables repository.DiningTableRepository, dishes repository.DishRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, tables: tables, dishes: dishes, dispatcher: dispatcher}
}

// CurrentOrder returns the customer's open order with its dish lines.
func (s *OrderService) CurrentOrder(ctx context.Context, customerID string) (*domain.CustomerOrder, []domain.DishOrder, error) {
	order, err := s.orders.GetOpenByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("open order", nil)
		}
		return nil, nil, err
	}

	lines, err := s.orders.ListDishOrders(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, lines, nil
}

// OpenOrder starts a dining session at a table. A customer can have at most
// one open order.
func (s *OrderService) OpenOrder(ctx context.Context, customerID, diningTableID string) (*domain.CustomerOrder, error) {
	if _, err := s.orders.GetOpenByCustomer(ctx, customerID); err == nil {
		return nil, apperrors.NewConflict("an open order already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	table, err := s.tables.GetByID(ctx, diningTableID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("dining table", map[string]any{"id": diningTableID})
		}
		return nil, err
	}

	order := &domain.CustomerOrder{
		RestaurantID:  table.RestaurantID,
		DiningTableID: table.ID,
		CustomerID:    customerID,
		Status:        domain.OrderStatusOpen,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderOpened,
		Timestamp: time.Now(),
		Payload: events.OrderOpenedPayload{
			OrderID:       order.ID,
			RestaurantID:  order.RestaurantID,
			DiningTableID: order.DiningTableID,
			CustomerID:    order.CustomerID,
		},
	})
	return order, nil
}

// AddDishOrder appends a dish line to the customer's open order. The dish
// must belong to the order's restaurant.
func (s *OrderService) AddDishOrder(ctx context.Context, customerID, dishID string, quantity int32, note *string) (*domain.DishOrder, error) {
	order, err := s.orders.GetOpenByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("open order", nil)
		}
		return nil, err
	}

	dish, err := s.dishes.GetByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("dish", map[string]any{"id": dishID})
		}
		return nil, err
	}
	if dish.RestaurantID != order.RestaurantID {
		return nil, apperrors.NewValidationError("dish belongs to another restaurant", map[string]any{"dish_id": dishID})
	}

	line := &domain.DishOrder{
		DishID:          dish.ID,
		CustomerOrderID: order.ID,
		Note:            note,
		Quantity:        quantity,
	}
	if err := s.orders.AddDishOrder(ctx, line); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDishOrdered,
		Timestamp: time.Now(),
		Payload: events.DishOrderedPayload{
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			DishID:       dish.ID,
			Quantity:     quantity,
		},
	})
	return line, nil
}

// ListRestaurantOrders returns a restaurant's orders, optionally filtered by
// status. Used by partners for their own restaurant only.
func (s *OrderService) ListRestaurantOrders(ctx context.Context, restaurantID string, status *domain.OrderStatus) ([]domain.CustomerOrder, error) {
	return s.orders.ListByRestaurant(ctx, restaurantID, status)
}

// CloseOrder closes an open order of the given restaurant. Orders of other
// restaurants are invisible to the caller.
func (s *OrderService) CloseOrder(ctx context.Context, restaurantID, orderID string) (*domain.CustomerOrder, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", map[string]any{"id": orderID})
		}
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, apperrors.NewNotFound("order", map[string]any{"id": orderID})
	}
	if order.Status != domain.OrderStatusOpen {
		return nil, apperrors.NewConflict("order already closed", nil)
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, domain.OrderStatusClosed); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatusClosed

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderClosed,
		Timestamp: time.Now(),
		Payload: events.OrderClosedPayload{
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
		},
	})
	return order, nil
}
