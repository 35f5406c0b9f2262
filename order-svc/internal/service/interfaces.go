package service

import (
	"context"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/pricing"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.Status) (int64, error)
	MarkPaid(ctx context.Context, id string, ref domain.PaymentRef) (int64, error)
	SetPaypalOrderID(ctx context.Context, id, paypalOrderID string) error
	SetStripePaymentIntent(ctx context.Context, id, intentID string) error
}

// CatalogReader loads what the pricing engine needs for one food.
type CatalogReader interface {
	PricingItem(ctx context.Context, foodID int) (pricing.Item, error)
}

type ZoneRepository interface {
	// MinOrderPrice reports false when no zone matches the city.
	MinOrderPrice(ctx context.Context, city string) (decimal.Decimal, bool, error)
}

type AdminRepository interface {
	GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	CountAdmins(ctx context.Context) (int, error)
	CreateAdmin(ctx context.Context, admin *domain.Admin) error
}

type IdempotencyStore interface {
	// Reserve binds key to orderID unless it is already bound, in which case
	// the existing order id is returned with reserved=false.
	Reserve(ctx context.Context, key, orderID string) (existing string, reserved bool, err error)
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type Notifier interface {
	Broadcast(event string, payload interface{})
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type PayPalGateway interface {
	CreateProviderOrder(ctx context.Context, total decimal.Decimal, items []pricing.CartItem) (string, error)
	CaptureProviderOrder(ctx context.Context, providerOrderID string) (string, error)
}

type StripeGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (domain.PaymentIntent, error)
	PaymentIntentStatus(ctx context.Context, id string) (string, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, in domain.OrderInput, idempotencyKey string) (*domain.Order, bool, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CalculateCart(items []pricing.CartItem) (pricing.Totals, error)
	Receipt(ctx context.Context, id string) (string, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type PaymentServiceInterface interface {
	PayPalCreateOrder(ctx context.Context, orderID string) (string, error)
	PayPalCaptureOrder(ctx context.Context, orderID, providerOrderID string) (*domain.Order, error)
	StripeCreateOrder(ctx context.Context, orderID string) (domain.PaymentIntent, error)
	StripeConfirmOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (domain.LoginResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

var (
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ PaymentServiceInterface = (*PaymentService)(nil)
	_ AuthServiceInterface    = (*AuthService)(nil)
)
