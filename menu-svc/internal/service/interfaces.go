package service

import (
	"context"

	"food-ordering/menu-svc/internal/domain"
	"food-ordering/pricing"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	CreateCategory(ctx context.Context, cat *domain.Category) error
	DeleteCategory(ctx context.Context, id int) (int64, error)
	CountFoods(ctx context.Context, categoryID int) (int, error)
}

type FoodRepository interface {
	ListFoods(ctx context.Context) ([]domain.Food, error)
	ListFoodsByCategory(ctx context.Context, categoryID int) ([]domain.Food, error)
	GetFood(ctx context.Context, id int) (*domain.Food, error)
	CreateFood(ctx context.Context, food *domain.Food) error
	UpdateFood(ctx context.Context, food *domain.Food) (int64, error)
	DeleteFood(ctx context.Context, id int) (int64, error)
}

type ReferenceRepository interface {
	ListOptions(ctx context.Context) ([]domain.NamedOption, error)
	ListExtras(ctx context.Context, category string) ([]domain.Extra, error)
	ListDeliveryZones(ctx context.Context) ([]domain.DeliveryZone, error)
}

type MenuCache interface {
	Key(parts ...string) string
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

type CatalogServiceInterface interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListFoodsByCategory(ctx context.Context, categoryID int) ([]domain.Food, error)
	ListFoods(ctx context.Context) ([]domain.Food, error)
	GetFood(ctx context.Context, id int) (*domain.Food, error)
	ListOptions(ctx context.Context) ([]domain.NamedOption, error)
	ListExtras(ctx context.Context, category string) ([]domain.Extra, error)
	ListDeliveryZones(ctx context.Context) ([]domain.DeliveryZone, error)
	DeliveryZoneByCity(ctx context.Context, city string) (*domain.DeliveryZone, error)
	ComposeCartItem(ctx context.Context, req domain.ComposeRequest) (pricing.CartItem, error)
}

type AdminServiceInterface interface {
	CreateCategory(ctx context.Context, cat *domain.Category) error
	DeleteCategory(ctx context.Context, id int) error
	CreateFood(ctx context.Context, in domain.FoodInput) (*domain.Food, error)
	UpdateFood(ctx context.Context, id int, in domain.FoodInput) (*domain.Food, error)
	DeleteFood(ctx context.Context, id int) error
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ AdminServiceInterface   = (*AdminService)(nil)
)
