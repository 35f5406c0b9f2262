package domain

import (
	"time"

	"food-ordering/pricing"

	"github.com/shopspring/decimal"
)

type (
	Option      = pricing.Option
	OptionValue = pricing.OptionValue
)

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Options     []Option  `json:"options"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Food struct {
	ID          int             `json:"id"`
	CategoryID  int             `json:"categoryId"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Options     []Option        `json:"options"`
	IsAvailable bool            `json:"isAvailable"`
	SortOrder   int             `json:"order"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NamedOption is option reference data shown in the admin food form.
type NamedOption struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Values []OptionValue `json:"values"`
}

type ExtraValue struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

type Extra struct {
	ID         int        `json:"id"`
	CategoryID int        `json:"categoryId"`
	Category   string     `json:"category"`
	Value      ExtraValue `json:"value"`
}

type DeliveryZone struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Distance      string          `json:"distance"`
	MinOrderPrice decimal.Decimal `json:"min_order_price"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
}

// FoodInput is the admin write shape; the category may be given by id or name.
type FoodInput struct {
	CategoryID  int            `json:"categoryId"`
	Category    string         `json:"category"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       pricing.Amount `json:"price"`
	Options     []Option       `json:"options"`
	IsAvailable *bool          `json:"isAvailable"`
	SortOrder   int            `json:"order"`
}

type ComposeRequest struct {
	FoodID int `json:"foodId"`
	pricing.Selection
}

type ComposeResponse struct {
	CartItem  pricing.CartItem `json:"cartItem"`
	LineTotal decimal.Decimal  `json:"lineTotal"`
}
