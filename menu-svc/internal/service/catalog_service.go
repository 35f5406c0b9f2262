package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"food-ordering/menu-svc/internal/domain"
	"food-ordering/pricing"
)

type CatalogService struct {
	categories CategoryRepository
	foods      FoodRepository
	refs       ReferenceRepository
	cache      MenuCache
}

func NewCatalogService(categories CategoryRepository, foods FoodRepository, refs ReferenceRepository, cache MenuCache) *CatalogService {
	return &CatalogService{
		categories: categories,
		foods:      foods,
		refs:       refs,
		cache:      cache,
	}
}

// cached serves from the menu cache when possible. Cache failures fall through
// to the loader.
func cached[T any](ctx context.Context, cache MenuCache, key string, load func() (T, error)) (T, error) {
	var value T
	if cache != nil {
		hit, err := cache.Get(ctx, key, &value)
		if err != nil {
			log.Printf("[menu-svc] cache get %s: %v", key, err)
		} else if hit {
			return value, nil
		}
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, value); err != nil {
			log.Printf("[menu-svc] cache set %s: %v", key, err)
		}
	}
	return value, nil
}

func (s *CatalogService) key(parts ...string) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.Key(parts...)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return cached(ctx, s.cache, s.key("categories"), func() ([]domain.Category, error) {
		return s.categories.ListCategories(ctx)
	})
}

func (s *CatalogService) ListFoodsByCategory(ctx context.Context, categoryID int) ([]domain.Food, error) {
	return cached(ctx, s.cache, s.key("foods", strconv.Itoa(categoryID)), func() ([]domain.Food, error) {
		if _, err := s.categories.GetCategory(ctx, categoryID); err != nil {
			return nil, err
		}
		return s.foods.ListFoodsByCategory(ctx, categoryID)
	})
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return cached(ctx, s.cache, s.key("foods"), func() ([]domain.Food, error) {
		return s.foods.ListFoods(ctx)
	})
}

func (s *CatalogService) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	return s.foods.GetFood(ctx, id)
}

func (s *CatalogService) ListOptions(ctx context.Context) ([]domain.NamedOption, error) {
	return cached(ctx, s.cache, s.key("options"), func() ([]domain.NamedOption, error) {
		return s.refs.ListOptions(ctx)
	})
}

func (s *CatalogService) ListExtras(ctx context.Context, category string) ([]domain.Extra, error) {
	return cached(ctx, s.cache, s.key("extras", category), func() ([]domain.Extra, error) {
		return s.refs.ListExtras(ctx, category)
	})
}

func (s *CatalogService) ListDeliveryZones(ctx context.Context) ([]domain.DeliveryZone, error) {
	return cached(ctx, s.cache, s.key("zones"), func() ([]domain.DeliveryZone, error) {
		return s.refs.ListDeliveryZones(ctx)
	})
}

// DeliveryZoneByCity matches the zone name case-insensitively.
func (s *CatalogService) DeliveryZoneByCity(ctx context.Context, city string) (*domain.DeliveryZone, error) {
	zones, err := s.ListDeliveryZones(ctx)
	if err != nil {
		return nil, err
	}
	city = strings.TrimSpace(city)
	for i := range zones {
		if strings.EqualFold(zones[i].Name, city) {
			return &zones[i], nil
		}
	}
	return nil, domain.ErrZoneNotFound
}

// ComposeCartItem prices a food selection against the current catalog.
func (s *CatalogService) ComposeCartItem(ctx context.Context, req domain.ComposeRequest) (pricing.CartItem, error) {
	food, err := s.foods.GetFood(ctx, req.FoodID)
	if err != nil {
		return pricing.CartItem{}, err
	}
	category, err := s.categories.GetCategory(ctx, food.CategoryID)
	if err != nil {
		return pricing.CartItem{}, fmt.Errorf("food %d: %w", food.ID, err)
	}
	extras, err := s.ListExtras(ctx, category.Name)
	if err != nil {
		return pricing.CartItem{}, err
	}

	item := pricing.Item{
		FoodID:          food.ID,
		Name:            food.Name,
		Price:           food.Price,
		Available:       food.IsAvailable,
		Options:         food.Options,
		CategoryOptions: category.Options,
	}
	for _, e := range extras {
		item.CategoryExtras = append(item.CategoryExtras, pricing.ExtraPrice{Name: e.Value.Name, Price: e.Value.Price})
	}

	return pricing.Compose(item, req.Selection)
}
