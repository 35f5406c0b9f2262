package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/pricing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(mockDB), mock
}

var orderRowColumns = []string{
	"id", "cart_items", "personal_detail", "delivery_address", "price", "order_type",
	"payment_method", "online_payment_method", "paypal_order_id", "paypal_transaction_id",
	"stripe_payment_intent_id", "status", "created_at", "updated_at",
}

func TestCreateOrder(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Now()
	order := &domain.Order{
		ID:             "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		CartItems:      []pricing.CartItem{{FoodID: 1, Name: "Pizza", Quantity: 2, Price: decimal.RequireFromString("13.5")}},
		PersonalDetail: domain.PersonalDetail{FullName: "Max Muster", Phone: "0171", Email: "max@example.com"},
		Price:          decimal.RequireFromString("27"),
		OrderType:      domain.OrderTypePickup,
		PaymentMethod:  domain.PaymentCash,
		Status:         domain.StatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(order.ID, sqlmock.AnyArg(), `{"fullName":"Max Muster","phone":"0171","email":"max@example.com"}`,
			nil, sqlmock.AnyArg(), "pickup", "cash", "", "new", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "delivery order",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(orderRowColumns).AddRow(
					"abc",
					[]byte(`[{"foodId":1,"name":"Pizza","quantity":2,"price":"13.50"}]`),
					[]byte(`{"fullName":"Max Muster","phone":"0171","email":"max@example.com"}`),
					[]byte(`{"street":"Hauptstr. 1","postalCode":"12345","city":"Musterstadt"}`),
					"27.00", "delivery", "online", "paypal", "PP-1", "", "", "pending_payment",
					time.Now(), time.Now())
				mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id = \$1::uuid`).WithArgs("abc").WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").WithArgs("abc").WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrOrderNotFound,
		},
		{
			name: "malformed id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").WithArgs("abc").
					WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"})
			},
			wantErr: domain.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			testCase.setup(mock)

			order, err := repo.GetOrder(context.Background(), "abc")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "27", order.Price.String())
				assert.Equal(t, domain.StatusPendingPayment, order.Status)
				assert.Equal(t, domain.OnlinePayPal, order.OnlinePaymentMethod)
				assert.Equal(t, "PP-1", order.PaypalOrderID)
				require.Len(t, order.CartItems, 1)
				assert.Equal(t, 2, order.CartItems[0].Quantity)
				require.NotNil(t, order.DeliveryAddress)
				assert.Equal(t, "Musterstadt", order.DeliveryAddress.City)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListOrders(t *testing.T) {
	repo, mock := setupTestDB(t)
	rows := sqlmock.NewRows(orderRowColumns).
		AddRow("b", []byte(`[]`), []byte(`{}`), nil, "15.00", "pickup", "cash", "", "", "", "", "new", time.Now(), time.Now()).
		AddRow("a", []byte(`[]`), []byte(`{}`), []byte(`null`), "20.00", "pickup", "cash", "", "", "", "", "completed", time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC").WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "b", orders[0].ID)
	assert.Nil(t, orders[0].DeliveryAddress)
	assert.Nil(t, orders[1].DeliveryAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Guarded(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "status still matches", affected: 1},
		{name: "status changed concurrently", affected: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			mock.ExpectExec("UPDATE orders SET status").
				WithArgs("abc", "new", "completed").
				WillReturnResult(sqlmock.NewResult(0, testCase.affected))

			n, err := repo.UpdateStatus(context.Background(), "abc", domain.StatusNew, domain.StatusCompleted)

			require.NoError(t, err)
			assert.Equal(t, testCase.affected, n)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkPaid(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("abc", "paid", "PP-1", "CAP-1", "", "pending_payment").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.MarkPaid(context.Background(), "abc", domain.PaymentRef{PaypalOrderID: "PP-1", PaypalTransactionID: "CAP-1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPaypalOrderID_UnknownOrder(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectExec("UPDATE orders SET paypal_order_id").
		WithArgs("abc", "PP-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetPaypalOrderID(context.Background(), "abc", "PP-1")

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusWritesWithMalformedID(t *testing.T) {
	repo, mock := setupTestDB(t)
	badID := &pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"}
	mock.ExpectExec(`UPDATE orders SET status (.+) WHERE id = \$1::uuid`).WillReturnError(badID)
	mock.ExpectExec("UPDATE orders SET status").WillReturnError(badID)
	mock.ExpectExec("UPDATE orders SET stripe_payment_intent_id").WillReturnError(badID)

	n, err := repo.UpdateStatus(context.Background(), "nope", domain.StatusNew, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.MarkPaid(context.Background(), "nope", domain.PaymentRef{StripePaymentIntentID: "pi_1"})
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorIs(t, repo.SetStripePaymentIntent(context.Background(), "nope", "pi_1"), domain.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPricingItem(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "food with category extras",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM foods f JOIN categories c").WithArgs(10).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "options", "is_available", "id", "options"}).
						AddRow(10, "Pizza Margherita", "8.00",
							[]byte(`[{"name":"size","values":[{"value":"40cm","price":"12.00"}]}]`), true,
							3, []byte(`[{"name":"extras","values":[{"value":"40cm","price":"1.50"}]}]`)))
				mock.ExpectQuery("SELECT name, price FROM extras").WithArgs(3).
					WillReturnRows(sqlmock.NewRows([]string{"name", "price"}).
						AddRow("Salami", "0.80").
						AddRow("Zwiebeln", nil))
			},
		},
		{
			name: "unknown food",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM foods f JOIN categories c").WithArgs(10).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrFoodNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			testCase.setup(mock)

			item, err := repo.PricingItem(context.Background(), 10)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
				assert.True(t, item.Available)
				require.Len(t, item.Options, 1)
				require.Len(t, item.CategoryExtras, 2)
				assert.Nil(t, item.CategoryExtras[1].Price)

				got, err := pricing.Compose(item, pricing.Selection{Size: "40cm", Extras: []string{"Salami"}, Quantity: 1})
				require.NoError(t, err)
				assert.Equal(t, "13.50", got.Price.StringFixed(2))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMinOrderPrice(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(sqlmock.Sqlmock)
		wantFound bool
		wantValue string
	}{
		{
			name: "known zone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT min_order_price FROM delivery_zones").
					WithArgs("musterstadt").
					WillReturnRows(sqlmock.NewRows([]string{"min_order_price"}).AddRow("20.00"))
			},
			wantFound: true,
			wantValue: "20",
		},
		{
			name: "unknown zone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT min_order_price FROM delivery_zones").
					WithArgs("musterstadt").
					WillReturnError(sql.ErrNoRows)
			},
			wantValue: "0",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			testCase.setup(mock)

			value, found, err := repo.MinOrderPrice(context.Background(), "musterstadt")

			require.NoError(t, err)
			assert.Equal(t, testCase.wantFound, found)
			assert.Equal(t, testCase.wantValue, value.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAdminByEmail_NotFound(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("SELECT (.+) FROM admins").WithArgs("admin@example.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAdminByEmail(context.Background(), "admin@example.com")

	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAdmin(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantID  int
		wantErr bool
	}{
		{
			name: "created",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO admins").
					WithArgs("admin@example.com", "hash").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
			},
			wantID: 1,
		},
		{
			name: "already seeded by another instance",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO admins").
					WithArgs("admin@example.com", "hash").
					WillReturnError(&pq.Error{Code: "23505"})
			},
		},
		{
			name: "database down",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO admins").
					WithArgs("admin@example.com", "hash").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			testCase.setup(mock)

			admin := &domain.Admin{Email: "admin@example.com", PasswordHash: "hash"}
			err := repo.CreateAdmin(context.Background(), admin)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.wantID, admin.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS orders_created_at_idx").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS admins").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS delivery_zones").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
