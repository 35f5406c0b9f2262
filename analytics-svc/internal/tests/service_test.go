package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"food-ordering/analytics-svc/internal/domain"
	"food-ordering/analytics-svc/internal/service"
	"food-ordering/sales"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*service.AnalyticsService, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return service.NewAnalyticsService(db, client), mock, mr
}

func TestAnalyticsService_Summary(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		setup       func(sqlmock.Sqlmock, *miniredis.Miniredis)
		wantOrders  int64
		wantRevenue string
		wantSource  string
		wantErr     error
	}{
		{
			name: "from aggregated hash",
			date: "2024-05-01",
			setup: func(mock sqlmock.Sqlmock, mr *miniredis.Miniredis) {
				mr.HSet("sales:daily:2024-05-01", "orders", "3", "revenue", "81.30000000000001")
			},
			wantOrders:  3,
			wantRevenue: "81.3",
			wantSource:  domain.SourceCache,
		},
		{
			name: "falls back to orders table",
			date: "2024-05-01",
			setup: func(mock sqlmock.Sqlmock, mr *miniredis.Miniredis) {
				start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
				mock.ExpectQuery("SELECT COUNT(.+) FROM orders").
					WithArgs(start, start.Add(24*time.Hour)).
					WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(2, "42.50"))
			},
			wantOrders:  2,
			wantRevenue: "42.5",
			wantSource:  domain.SourceDatabase,
		},
		{
			name: "corrupt hash falls back",
			date: "2024-05-01",
			setup: func(mock sqlmock.Sqlmock, mr *miniredis.Miniredis) {
				mr.HSet("sales:daily:2024-05-01", "orders", "many")
				mock.ExpectQuery("SELECT COUNT(.+) FROM orders").
					WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(0, "0"))
			},
			wantOrders:  0,
			wantRevenue: "0",
			wantSource:  domain.SourceDatabase,
		},
		{
			name:    "invalid date",
			date:    "01.05.2024",
			setup:   func(mock sqlmock.Sqlmock, mr *miniredis.Miniredis) {},
			wantErr: domain.ErrInvalidDate,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, mock, mr := newTestService(t)
			testCase.setup(mock, mr)

			summary, err := svc.Summary(context.Background(), testCase.date)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.date, summary.Date)
				assert.Equal(t, testCase.wantOrders, summary.Orders)
				assert.Equal(t, testCase.wantRevenue, summary.Revenue.String())
				assert.Equal(t, testCase.wantSource, summary.Source)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAnalyticsService_SummaryDefaultsToToday(t *testing.T) {
	svc, _, mr := newTestService(t)
	today := sales.Day(time.Now())
	mr.HSet(sales.DailyKey(today), "orders", "1", "revenue", "12")

	summary, err := svc.Summary(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, today, summary.Date)
	assert.Equal(t, int64(1), summary.Orders)
}

func TestAnalyticsService_TopToday(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(sqlmock.Sqlmock, *miniredis.Miniredis)
		wantFirst string
		wantLen   int
		wantErr   bool
	}{
		{
			name: "from sorted set",
			setup: func(mock sqlmock.Sqlmock, mr *miniredis.Miniredis) {
				key := sales.DailyFoodsKey(sales.Day(time.Now()))
				mr.ZAdd(key, 2, "Cola")
				mr.ZAdd(key, 5, "Pizza Margherita")
			},
			wantFirst: "Pizza Margherita",
			wantLen:   2,
		},
		{
			name: "falls back to cart snapshots",
			setup: func(mock sqlmock.Sqlmock, mr *miniredis.Miniredis) {
				mock.ExpectQuery("FROM orders, jsonb_array_elements").
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"name", "quantity"}).
						AddRow("Pizza Salami", 4).
						AddRow("Cola", 1))
			},
			wantFirst: "Pizza Salami",
			wantLen:   2,
		},
		{
			name: "database failure",
			setup: func(mock sqlmock.Sqlmock, mr *miniredis.Miniredis) {
				mock.ExpectQuery("FROM orders, jsonb_array_elements").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, mock, mr := newTestService(t)
			testCase.setup(mock, mr)

			ranks, err := svc.TopToday(context.Background())

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Len(t, ranks, testCase.wantLen)
				assert.Equal(t, testCase.wantFirst, ranks[0].Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAnalyticsService_TopAllTime(t *testing.T) {
	svc, mock, mr := newTestService(t)
	for i := 0; i < 12; i++ {
		mr.ZAdd(sales.AllTimeFoodsKey, float64(i+1), string(rune('A'+i)))
	}

	ranks, err := svc.TopAllTime(context.Background())

	require.NoError(t, err)
	require.Len(t, ranks, 10)
	assert.Equal(t, "L", ranks[0].Name)
	assert.Equal(t, int64(12), ranks[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsService_TopAllTimeWithoutCache(t *testing.T) {
	svc, mock, mr := newTestService(t)
	mr.Close()

	mock.ExpectQuery("FROM orders, jsonb_array_elements").
		WillReturnRows(sqlmock.NewRows([]string{"name", "quantity"}).AddRow("Pizza Margherita", 42))

	ranks, err := svc.TopAllTime(context.Background())

	require.NoError(t, err)
	require.Len(t, ranks, 1)
	assert.Equal(t, int64(42), ranks[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
