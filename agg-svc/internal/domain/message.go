package domain

import (
	"time"

	"food-ordering/pricing"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"

	StatusCancelled = "cancelled"
)

type Customer struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Order is the part of the published order the aggregator reads.
type Order struct {
	ID        string             `json:"id"`
	CartItems []pricing.CartItem `json:"cartItem"`
	Customer  Customer           `json:"personalDetail"`
	Price     decimal.Decimal    `json:"price"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Order     *Order    `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}
