package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/pricing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const orderColumns = `id, cart_items, personal_detail, delivery_address, price, order_type,
	payment_method, online_payment_method, paypal_order_id, paypal_transaction_id,
	stripe_payment_intent_id, status, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (domain.Order, error) {
	var (
		o                         domain.Order
		items, person, addr       []byte
		orderType, method, online string
		status                    string
	)
	if err := row.Scan(&o.ID, &items, &person, &addr, &o.Price, &orderType,
		&method, &online, &o.PaypalOrderID, &o.PaypalTransactionID,
		&o.StripePaymentIntentID, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return o, err
	}
	o.OrderType = domain.OrderType(orderType)
	o.PaymentMethod = domain.PaymentMethod(method)
	o.OnlinePaymentMethod = domain.OnlinePaymentMethod(online)
	o.Status = domain.Status(status)

	if err := json.Unmarshal(items, &o.CartItems); err != nil {
		return o, fmt.Errorf("decode cart items: %w", err)
	}
	if err := json.Unmarshal(person, &o.PersonalDetail); err != nil {
		return o, fmt.Errorf("decode personal detail: %w", err)
	}
	if len(addr) > 0 && string(addr) != "null" {
		o.DeliveryAddress = &domain.DeliveryAddress{}
		if err := json.Unmarshal(addr, o.DeliveryAddress); err != nil {
			return o, fmt.Errorf("decode delivery address: %w", err)
		}
	}
	return o, nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.CartItems)
	if err != nil {
		return err
	}
	person, err := json.Marshal(order.PersonalDetail)
	if err != nil {
		return err
	}
	var addr sql.NullString
	if order.DeliveryAddress != nil {
		b, err := json.Marshal(order.DeliveryAddress)
		if err != nil {
			return err
		}
		addr = sql.NullString{String: string(b), Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO orders (id, cart_items, personal_detail, delivery_address, price, order_type,
			payment_method, online_payment_method, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		order.ID, string(items), string(person), addr, order.Price, string(order.OrderType),
		string(order.PaymentMethod), string(order.OnlinePaymentMethod), string(order.Status),
		order.CreatedAt, order.UpdatedAt)
	return err
}

// invalidID reports Postgres rejecting a malformed uuid (invalid_text_representation).
func invalidID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1::uuid`, id))
	if errors.Is(err, sql.ErrNoRows) || invalidID(err) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateStatus only applies when the stored status still equals from.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Status) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $3, updated_at = NOW()
		WHERE id = $1::uuid AND status = $2`, id, string(from), string(to))
	if invalidID(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) MarkPaid(ctx context.Context, id string, ref domain.PaymentRef) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $2,
			paypal_order_id = COALESCE(NULLIF($3, ''), paypal_order_id),
			paypal_transaction_id = COALESCE(NULLIF($4, ''), paypal_transaction_id),
			stripe_payment_intent_id = COALESCE(NULLIF($5, ''), stripe_payment_intent_id),
			updated_at = NOW()
		WHERE id = $1::uuid AND status = $6`,
		id, string(domain.StatusPaid), ref.PaypalOrderID, ref.PaypalTransactionID,
		ref.StripePaymentIntentID, string(domain.StatusPendingPayment))
	if invalidID(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) SetPaypalOrderID(ctx context.Context, id, paypalOrderID string) error {
	return r.setColumn(ctx, "paypal_order_id", id, paypalOrderID)
}

func (r *PostgresRepository) SetStripePaymentIntent(ctx context.Context, id, intentID string) error {
	return r.setColumn(ctx, "stripe_payment_intent_id", id, intentID)
}

// setColumn is only called with the fixed column names above.
func (r *PostgresRepository) setColumn(ctx context.Context, column, id, value string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET `+column+` = $2, updated_at = NOW() WHERE id = $1::uuid`, id, value)
	if invalidID(err) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PostgresRepository) MinOrderPrice(ctx context.Context, city string) (decimal.Decimal, bool, error) {
	var minimum decimal.Decimal
	err := r.DB.QueryRowContext(ctx, `
		SELECT min_order_price FROM delivery_zones
		WHERE LOWER(name) = LOWER($1)
		LIMIT 1`, city).Scan(&minimum)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	return minimum, true, nil
}

func (r *PostgresRepository) GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at FROM admins WHERE LOWER(email) = LOWER($1)`, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

func (r *PostgresRepository) CreateAdmin(ctx context.Context, admin *domain.Admin) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO admins (email, password_hash) VALUES ($1, $2)
		RETURNING id, created_at`, admin.Email, admin.PasswordHash).Scan(&admin.ID, &admin.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil
	}
	return err
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			cart_items JSONB NOT NULL,
			personal_detail JSONB NOT NULL,
			delivery_address JSONB,
			price NUMERIC(10,2) NOT NULL,
			order_type TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			online_payment_method TEXT NOT NULL DEFAULT '',
			paypal_order_id TEXT NOT NULL DEFAULT '',
			paypal_transaction_id TEXT NOT NULL DEFAULT '',
			stripe_payment_intent_id TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC)",
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS delivery_zones (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			distance TEXT,
			min_order_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// PricingItem reads a food with its category options and extras from the
// catalog tables owned by menu-svc.
func (r *PostgresRepository) PricingItem(ctx context.Context, foodID int) (pricing.Item, error) {
	var (
		item                   pricing.Item
		categoryID             int
		foodOpts, categoryOpts []byte
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT f.id, f.name, f.price, f.options, f.is_available, c.id, c.options
		FROM foods f
		JOIN categories c ON c.id = f.category_id
		WHERE f.id = $1`, foodID).
		Scan(&item.FoodID, &item.Name, &item.Price, &foodOpts, &item.Available, &categoryID, &categoryOpts)
	if errors.Is(err, sql.ErrNoRows) {
		return item, domain.ErrFoodNotFound
	}
	if err != nil {
		return item, err
	}
	if err := decodeOptions(foodOpts, &item.Options); err != nil {
		return item, fmt.Errorf("food %d options: %w", foodID, err)
	}
	if err := decodeOptions(categoryOpts, &item.CategoryOptions); err != nil {
		return item, fmt.Errorf("category %d options: %w", categoryID, err)
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT name, price FROM extras WHERE category_id = $1 ORDER BY id`, categoryID)
	if err != nil {
		return item, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			extra pricing.ExtraPrice
			price decimal.NullDecimal
		)
		if err := rows.Scan(&extra.Name, &price); err != nil {
			return item, err
		}
		if price.Valid {
			p := price.Decimal
			extra.Price = &p
		}
		item.CategoryExtras = append(item.CategoryExtras, extra)
	}
	return item, rows.Err()
}

func decodeOptions(b []byte, dest *[]pricing.Option) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, dest)
}
