package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"food-ordering/analytics-svc/internal/domain"
	"food-ordering/sales"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const topLimit = 10

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// dayBounds returns the UTC day for date, defaulting to today.
func (s *AnalyticsService) dayBounds(date string) (string, time.Time, error) {
	if date == "" {
		date = sales.Day(s.now())
	}
	start, err := sales.ParseDay(date)
	if err != nil {
		return "", time.Time{}, domain.ErrInvalidDate
	}
	return date, start, nil
}

// Summary reads the aggregated hash and falls back to the orders table when
// the aggregator has not written it.
func (s *AnalyticsService) Summary(ctx context.Context, date string) (domain.DailySummary, error) {
	day, start, err := s.dayBounds(date)
	if err != nil {
		return domain.DailySummary{}, err
	}

	fields, err := s.rdb.HGetAll(ctx, sales.DailyKey(day)).Result()
	if err != nil {
		log.Printf("[analytics-svc] read %s: %v", sales.DailyKey(day), err)
	}
	if err == nil && len(fields) > 0 {
		summary, err := summaryFromHash(day, fields)
		if err == nil {
			return summary, nil
		}
		log.Printf("[analytics-svc] decode %s: %v", sales.DailyKey(day), err)
	}

	return s.summaryFromDB(ctx, day, start)
}

func summaryFromHash(day string, fields map[string]string) (domain.DailySummary, error) {
	summary := domain.DailySummary{Date: day, Revenue: decimal.Zero, Source: domain.SourceCache}
	if v, ok := fields[sales.FieldOrders]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return summary, fmt.Errorf("orders field: %w", err)
		}
		summary.Orders = n
	}
	if v, ok := fields[sales.FieldRevenue]; ok {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return summary, fmt.Errorf("revenue field: %w", err)
		}
		summary.Revenue = d.Round(2)
	}
	return summary, nil
}

func (s *AnalyticsService) summaryFromDB(ctx context.Context, day string, start time.Time) (domain.DailySummary, error) {
	summary := domain.DailySummary{Date: day, Source: domain.SourceDatabase}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(price), 0)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2 AND status <> 'cancelled'
	`, start, start.Add(24*time.Hour)).Scan(&summary.Orders, &summary.Revenue)
	if err != nil {
		return domain.DailySummary{}, err
	}
	return summary, nil
}

func (s *AnalyticsService) TopToday(ctx context.Context) ([]domain.FoodRank, error) {
	day, start, _ := s.dayBounds("")
	if ranks, ok := s.topFromCache(ctx, sales.DailyFoodsKey(day)); ok {
		return ranks, nil
	}
	return s.topFromDB(ctx, &start)
}

func (s *AnalyticsService) TopAllTime(ctx context.Context) ([]domain.FoodRank, error) {
	if ranks, ok := s.topFromCache(ctx, sales.AllTimeFoodsKey); ok {
		return ranks, nil
	}
	return s.topFromDB(ctx, nil)
}

func (s *AnalyticsService) topFromCache(ctx context.Context, key string) ([]domain.FoodRank, bool) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, topLimit-1).Result()
	if err != nil {
		log.Printf("[analytics-svc] read %s: %v", key, err)
		return nil, false
	}
	if len(result) == 0 {
		return nil, false
	}

	ranks := make([]domain.FoodRank, 0, len(result))
	for _, z := range result {
		name, _ := z.Member.(string)
		ranks = append(ranks, domain.FoodRank{Name: name, Quantity: int64(z.Score)})
	}
	return ranks, true
}

// topFromDB aggregates the cart snapshots stored on each order. A nil day
// means all time.
func (s *AnalyticsService) topFromDB(ctx context.Context, day *time.Time) ([]domain.FoodRank, error) {
	query := `
		SELECT item->>'name' AS name, SUM(GREATEST(COALESCE((item->>'quantity')::int, 1), 1)) AS quantity
		FROM orders, jsonb_array_elements(cart_items) AS item`
	var args []interface{}
	if day != nil {
		query += `
		WHERE created_at >= $1 AND created_at < $2`
		args = append(args, *day, day.Add(24*time.Hour))
	}
	query += fmt.Sprintf(`
		GROUP BY name
		ORDER BY quantity DESC, name
		LIMIT %d`, topLimit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranks := []domain.FoodRank{}
	for rows.Next() {
		var r domain.FoodRank
		if err := rows.Scan(&r.Name, &r.Quantity); err != nil {
			return nil, err
		}
		ranks = append(ranks, r)
	}
	return ranks, rows.Err()
}
