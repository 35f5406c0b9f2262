package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"food-ordering/menu-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const categoryColumns = `id, name, COALESCE(description, ''), COALESCE(image_url, ''), options, created_at`

func scanCategory(row interface{ Scan(...interface{}) error }) (domain.Category, error) {
	var (
		cat     domain.Category
		options []byte
	)
	if err := row.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ImageURL, &options, &cat.CreatedAt); err != nil {
		return cat, err
	}
	if err := decodeJSON(options, &cat.Options); err != nil {
		return cat, fmt.Errorf("category %d options: %w", cat.ID, err)
	}
	return cat, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	cat, err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *PostgresRepository) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	cat, err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE LOWER(name) = LOWER($1)`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, cat *domain.Category) error {
	options, err := encodeJSON(cat.Options)
	if err != nil {
		return err
	}
	err = r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (name, description, image_url, options) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		cat.Name, cat.Description, cat.ImageURL, options,
	).Scan(&cat.ID, &cat.CreatedAt)
	return translateUnique(err)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CountFoods(ctx context.Context, categoryID int) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM foods WHERE category_id = $1", categoryID).Scan(&n)
	return n, err
}

const foodSelect = `
	SELECT f.id, f.category_id, c.name, f.name, COALESCE(f.description, ''), f.price, f.options,
		f.is_available, f.sort_order, f.created_at
	FROM foods f
	JOIN categories c ON c.id = f.category_id`

func scanFood(row interface{ Scan(...interface{}) error }) (domain.Food, error) {
	var (
		food    domain.Food
		options []byte
	)
	if err := row.Scan(&food.ID, &food.CategoryID, &food.Category, &food.Name, &food.Description,
		&food.Price, &options, &food.IsAvailable, &food.SortOrder, &food.CreatedAt); err != nil {
		return food, err
	}
	if err := decodeJSON(options, &food.Options); err != nil {
		return food, fmt.Errorf("food %d options: %w", food.ID, err)
	}
	return food, nil
}

func (r *PostgresRepository) queryFoods(ctx context.Context, query string, args ...interface{}) ([]domain.Food, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (r *PostgresRepository) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return r.queryFoods(ctx, foodSelect+` ORDER BY c.name, f.sort_order, f.id`)
}

func (r *PostgresRepository) ListFoodsByCategory(ctx context.Context, categoryID int) ([]domain.Food, error) {
	return r.queryFoods(ctx, foodSelect+` WHERE f.category_id = $1 ORDER BY f.sort_order, f.id`, categoryID)
}

func (r *PostgresRepository) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	food, err := scanFood(r.DB.QueryRowContext(ctx, foodSelect+` WHERE f.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *PostgresRepository) CreateFood(ctx context.Context, food *domain.Food) error {
	options, err := encodeJSON(food.Options)
	if err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO foods (category_id, name, description, price, options, is_available, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		food.CategoryID, food.Name, food.Description, food.Price, options, food.IsAvailable, food.SortOrder,
	).Scan(&food.ID, &food.CreatedAt)
}

func (r *PostgresRepository) UpdateFood(ctx context.Context, food *domain.Food) (int64, error) {
	options, err := encodeJSON(food.Options)
	if err != nil {
		return 0, err
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE foods
		SET category_id=$1, name=$2, description=$3, price=$4, options=$5, is_available=$6, sort_order=$7
		WHERE id=$8`,
		food.CategoryID, food.Name, food.Description, food.Price, options, food.IsAvailable, food.SortOrder, food.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteFood(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM foods WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListOptions(ctx context.Context) ([]domain.NamedOption, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, option_values FROM options ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []domain.NamedOption{}
	for rows.Next() {
		var (
			opt    domain.NamedOption
			values []byte
		)
		if err := rows.Scan(&opt.ID, &opt.Name, &values); err != nil {
			return nil, err
		}
		if err := decodeJSON(values, &opt.Values); err != nil {
			return nil, fmt.Errorf("option %d values: %w", opt.ID, err)
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

// ListExtras filters by category name; an empty name returns every extra.
func (r *PostgresRepository) ListExtras(ctx context.Context, category string) ([]domain.Extra, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT e.id, e.category_id, c.name, e.name, e.price
		FROM extras e
		JOIN categories c ON c.id = e.category_id
		WHERE $1::text = '' OR LOWER(c.name) = LOWER($1::text)
		ORDER BY c.name, e.id`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := []domain.Extra{}
	for rows.Next() {
		var (
			extra domain.Extra
			price decimal.NullDecimal
		)
		if err := rows.Scan(&extra.ID, &extra.CategoryID, &extra.Category, &extra.Value.Name, &price); err != nil {
			return nil, err
		}
		if price.Valid {
			p := price.Decimal
			extra.Value.Price = &p
		}
		extras = append(extras, extra)
	}
	return extras, rows.Err()
}

func (r *PostgresRepository) ListDeliveryZones(ctx context.Context) ([]domain.DeliveryZone, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(distance, ''), min_order_price, delivery_fee
		FROM delivery_zones
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []domain.DeliveryZone{}
	for rows.Next() {
		var z domain.DeliveryZone
		if err := rows.Scan(&z.ID, &z.Name, &z.Distance, &z.MinOrderPrice, &z.DeliveryFee); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			image_url TEXT,
			options JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS foods (
			id SERIAL PRIMARY KEY,
			category_id INT NOT NULL REFERENCES categories(id),
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			options JSONB NOT NULL DEFAULT '[]',
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS options (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			option_values JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS extras (
			id SERIAL PRIMARY KEY,
			category_id INT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			price NUMERIC(10,2)
		)`,
		`CREATE TABLE IF NOT EXISTS delivery_zones (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			distance TEXT,
			min_order_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
		"CREATE INDEX IF NOT EXISTS foods_category_idx ON foods (category_id, sort_order)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// encodeJSON returns a string so lib/pq sends it as text rather than bytea.
func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

func decodeJSON(b []byte, v interface{}) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, v)
}

func translateUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateName
	}
	return err
}
