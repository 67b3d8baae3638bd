package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// RestaurantService covers venue, menu and table management plus partner
// provisioning.
type RestaurantService struct {
	restaurants repository.RestaurantRepository
	dishes      repository.DishRepository
	tables      repository.DiningTableRepository
	partners    repository.PartnerRepository
	bcryptCost  int
}

// NewRestaurantService builds the service.
func NewRestaurantService(restaurants repository.RestaurantRepository, dishes repository.DishRepository, tables repository.DiningTableRepository, partners repository.PartnerRepository, bcryptCost int) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		dishes:      dishes,
		tables:      tables,
		partners:    partners,
		bcryptCost:  bcryptCost,
	}
}

// RestaurantCreateInput captures new venue fields.
type RestaurantCreateInput struct {
	Name        string
	Address     string
	Logo        string
	Cover       string
	LocationURL string
}

// CreateRestaurant persists a new venue.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, input RestaurantCreateInput) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{
		Name:        input.Name,
		Address:     input.Address,
		Logo:        input.Logo,
		Cover:       input.Cover,
		LocationURL: input.LocationURL,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// GetRestaurant returns a venue by id.
func (s *RestaurantService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("restaurant", map[string]any{"id": id})
		}
		return nil, err
	}
	return restaurant, nil
}

// ListRestaurants pages through venues.
func (s *RestaurantService) ListRestaurants(ctx context.Context, limit, offset int) ([]domain.Restaurant, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.restaurants.List(ctx, limit, offset)
}

// CreateDish adds a menu item to the given restaurant.
func (s *RestaurantService) CreateDish(ctx context.Context, restaurantID, name, description string, price int32) (*domain.Dish, error) {
	dish := &domain.Dish{
		Name:         name,
		Description:  description,
		Price:        price,
		RestaurantID: restaurantID,
	}
	if err := s.dishes.Create(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// GetDish returns a menu item by id.
func (s *RestaurantService) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("dish", map[string]any{"id": id})
		}
		return nil, err
	}
	return dish, nil
}

// ListDishes returns the menu of a restaurant.
func (s *RestaurantService) ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	return s.dishes.ListByRestaurant(ctx, restaurantID)
}

// CreateDiningTable adds a table to the given restaurant.
func (s *RestaurantService) CreateDiningTable(ctx context.Context, restaurantID, name string) (*domain.DiningTable, error) {
	table := &domain.DiningTable{
		Name:         name,
		RestaurantID: restaurantID,
	}
	if err := s.tables.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// GetDiningTable returns a table by id.
func (s *RestaurantService) GetDiningTable(ctx context.Context, id string) (*domain.DiningTable, error) {
	table, err := s.tables.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("dining table", map[string]any{"id": id})
		}
		return nil, err
	}
	return table, nil
}

// ListDiningTables returns the tables of a restaurant.
func (s *RestaurantService) ListDiningTables(ctx context.Context, restaurantID string) ([]domain.DiningTable, error) {
	return s.tables.ListByRestaurant(ctx, restaurantID)
}

// PartnerCreateInput captures new operator fields.
type PartnerCreateInput struct {
	Name         string
	Username     string
	Password     string
	RestaurantID string
	Picture      string
	Phone        string
	Email        string
}

// CreatePartner provisions a restaurant operator account.
func (s *RestaurantService) CreatePartner(ctx context.Context, input PartnerCreateInput) (*domain.Partner, error) {
	if _, err := s.partners.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewConflict("username already taken", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if _, err := s.restaurants.GetByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("restaurant", map[string]any{"id": input.RestaurantID})
		}
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	partner := &domain.Partner{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: hash,
		RestaurantID: input.RestaurantID,
		Picture:      input.Picture,
		Phone:        input.Phone,
		Email:        input.Email,
		Active:       true,
	}
	if err := s.partners.Create(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}
