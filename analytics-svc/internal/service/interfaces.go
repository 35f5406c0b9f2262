package service

import (
	"context"

	"food-ordering/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	Summary(ctx context.Context, date string) (domain.DailySummary, error)
	TopToday(ctx context.Context) ([]domain.FoodRank, error)
	TopAllTime(ctx context.Context) ([]domain.FoodRank, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
