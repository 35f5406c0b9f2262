package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"food-ordering/menu-svc/internal/domain"
)

type AdminService struct {
	categories CategoryRepository
	foods      FoodRepository
	cache      MenuCache
}

func NewAdminService(categories CategoryRepository, foods FoodRepository, cache MenuCache) *AdminService {
	return &AdminService{categories: categories, foods: foods, cache: cache}
}

func (s *AdminService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[menu-svc] cache invalidate: %v", err)
	}
}

func (s *AdminService) CreateCategory(ctx context.Context, cat *domain.Category) error {
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	if err := s.categories.CreateCategory(ctx, cat); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, id int) error {
	n, err := s.categories.CountFoods(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCategoryInUse
	}
	rows, err := s.categories.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	s.invalidate(ctx)
	return nil
}

// resolveCategory turns the id-or-name reference into a stored category id.
func (s *AdminService) resolveCategory(ctx context.Context, in domain.FoodInput) (int, error) {
	var (
		cat *domain.Category
		err error
	)
	switch {
	case in.CategoryID > 0:
		cat, err = s.categories.GetCategory(ctx, in.CategoryID)
	case strings.TrimSpace(in.Category) != "":
		cat, err = s.categories.GetCategoryByName(ctx, strings.TrimSpace(in.Category))
	default:
		return 0, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return cat.ID, nil
}

func (s *AdminService) buildFood(ctx context.Context, in domain.FoodInput) (*domain.Food, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: food name is required", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	categoryID, err := s.resolveCategory(ctx, in)
	if err != nil {
		return nil, err
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	return &domain.Food{
		CategoryID:  categoryID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price.Decimal.Round(2),
		Options:     in.Options,
		IsAvailable: available,
		SortOrder:   in.SortOrder,
	}, nil
}

func (s *AdminService) CreateFood(ctx context.Context, in domain.FoodInput) (*domain.Food, error) {
	food, err := s.buildFood(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.foods.CreateFood(ctx, food); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return food, nil
}

func (s *AdminService) UpdateFood(ctx context.Context, id int, in domain.FoodInput) (*domain.Food, error) {
	food, err := s.buildFood(ctx, in)
	if err != nil {
		return nil, err
	}
	food.ID = id
	rows, err := s.foods.UpdateFood(ctx, food)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrFoodNotFound
	}
	s.invalidate(ctx)
	return s.foods.GetFood(ctx, id)
}

func (s *AdminService) DeleteFood(ctx context.Context, id int) error {
	rows, err := s.foods.DeleteFood(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFoodNotFound
	}
	s.invalidate(ctx)
	return nil
}
