package domain

import (
	"time"

	"food-ordering/pricing"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

type OnlinePaymentMethod string

const (
	OnlinePayPal OnlinePaymentMethod = "paypal"
	OnlineGiro   OnlinePaymentMethod = "giro"
)

type PersonalDetail struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type DeliveryAddress struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Floor      string `json:"floor,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type Order struct {
	ID                    string              `json:"id"`
	CartItems             []pricing.CartItem  `json:"cartItem"`
	PersonalDetail        PersonalDetail      `json:"personalDetail"`
	DeliveryAddress       *DeliveryAddress    `json:"deliveryAddress,omitempty"`
	Price                 decimal.Decimal     `json:"price"`
	OrderType             OrderType           `json:"orderType"`
	PaymentMethod         PaymentMethod       `json:"paymentMethod"`
	OnlinePaymentMethod   OnlinePaymentMethod `json:"onlinePaymentMethod,omitempty"`
	PaypalOrderID         string              `json:"paypalOrderId,omitempty"`
	PaypalTransactionID   string              `json:"paypalTransactionId,omitempty"`
	StripePaymentIntentID string              `json:"stripePaymentIntentId,omitempty"`
	Status                Status              `json:"status"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

// StatusView is what the public order lookup returns; it carries no customer
// details.
type StatusView struct {
	ID                  string              `json:"id"`
	Status              Status              `json:"status"`
	OrderType           OrderType           `json:"orderType"`
	PaymentMethod       PaymentMethod       `json:"paymentMethod"`
	OnlinePaymentMethod OnlinePaymentMethod `json:"onlinePaymentMethod,omitempty"`
	Price               decimal.Decimal     `json:"price"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

func (o *Order) StatusView() StatusView {
	return StatusView{
		ID:                  o.ID,
		Status:              o.Status,
		OrderType:           o.OrderType,
		PaymentMethod:       o.PaymentMethod,
		OnlinePaymentMethod: o.OnlinePaymentMethod,
		Price:               o.Price,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

// OrderInput is the checkout payload. Price is optional and only compared
// against the server-side total.
type OrderInput struct {
	CartItems           []pricing.CartItem  `json:"cartItem"`
	PersonalDetail      PersonalDetail      `json:"personalDetail"`
	DeliveryAddress     *DeliveryAddress    `json:"deliveryAddress"`
	Price               *pricing.Amount     `json:"price"`
	OrderType           OrderType           `json:"orderType"`
	PaymentMethod       PaymentMethod       `json:"paymentMethod"`
	OnlinePaymentMethod OnlinePaymentMethod `json:"onlinePaymentMethod"`
}

// PaymentRef carries the provider identifiers written when an order is paid.
type PaymentRef struct {
	PaypalOrderID         string
	PaypalTransactionID   string
	StripePaymentIntentID string
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
}

type Admin struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// Websocket event names pushed to admin clients.
const (
	NotifyNewOrder     = "newOrder"
	NotifyOrderUpdated = "orderUpdated"
)

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	Status    Status    `json:"status"`
	Order     *Order    `json:"order,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
