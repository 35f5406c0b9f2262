// Package sales holds the Redis layout shared by the aggregator that writes
// sales figures and the analytics service that reads them.
package sales

import "time"

const (
	dayLayout = "2006-01-02"

	AllTimeFoodsKey = "sales:foods:alltime"

	FieldOrders  = "orders"
	FieldRevenue = "revenue"

	// DailyTTL bounds how long per-day keys are kept.
	DailyTTL = 90 * 24 * time.Hour
)

// Day returns the bucket an instant falls into. Buckets are UTC days.
func Day(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// ParseDay validates a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

func DailyKey(day string) string {
	return "sales:daily:" + day
}

func DailyFoodsKey(day string) string {
	return "sales:foods:daily:" + day
}

// SeenKey marks an order event as already applied.
func SeenKey(eventType, orderID string) string {
	return "sales:seen:" + eventType + ":" + orderID
}
