package service

import (
	"context"
	"errors"
	"log"
	"time"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/pricing"

	"github.com/google/uuid"
)

type OrderService struct {
	orders  OrderRepository
	catalog CatalogReader
	zones   ZoneRepository
	idem    IdempotencyStore
	qr      QRGenerator
	events  dispatcher
	now     func() time.Time
	newID   func() string
}

func NewOrderService(orders OrderRepository, catalog CatalogReader, zones ZoneRepository, idem IdempotencyStore, publisher EventPublisher, notifier Notifier, qr QRGenerator) *OrderService {
	return &OrderService{
		orders:  orders,
		catalog: catalog,
		zones:   zones,
		idem:    idem,
		qr:      qr,
		events:  dispatcher{publisher: publisher, notifier: notifier, now: time.Now},
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// CreateOrder validates and persists a checkout. The returned bool is true when
// the idempotency key matched an earlier order, which is returned unchanged.
func (s *OrderService) CreateOrder(ctx context.Context, in domain.OrderInput, idempotencyKey string) (*domain.Order, bool, error) {
	items, err := s.priceItems(ctx, in.CartItems)
	if err != nil {
		return nil, false, err
	}
	in.CartItems = items

	order, err := buildOrder(in)
	if err != nil {
		return nil, false, err
	}
	if in.Price != nil && !in.Price.Decimal.Equal(order.Price) {
		log.Printf("[order-svc] client price %s differs from computed %s", in.Price.Decimal, order.Price)
	}

	if order.OrderType == domain.OrderTypeDelivery && s.zones != nil {
		minimum, found, err := s.zones.MinOrderPrice(ctx, order.DeliveryAddress.City)
		if err != nil {
			return nil, false, err
		}
		if found && order.Price.LessThan(minimum) {
			return nil, false, domain.Validation("minimum order value for %s is %s", order.DeliveryAddress.City, pricing.FormatEUR(minimum))
		}
	}

	now := s.now().UTC()
	order.ID = s.newID()
	order.Status = domain.InitialStatus(order.PaymentMethod)
	order.CreatedAt = now
	order.UpdatedAt = now

	reserved := false
	if idempotencyKey != "" && s.idem != nil {
		existing, ok, err := s.idem.Reserve(ctx, idempotencyKey, order.ID)
		switch {
		case err != nil:
			log.Printf("[order-svc] idempotency reserve %q: %v", idempotencyKey, err)
		case !ok:
			return s.replay(ctx, existing)
		default:
			reserved = true
		}
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		if reserved {
			if relErr := s.idem.Release(ctx, idempotencyKey); relErr != nil {
				log.Printf("[order-svc] idempotency release %q: %v", idempotencyKey, relErr)
			}
		}
		return nil, false, err
	}

	log.Printf("[order-svc] order %s created: %s %s total=%s", order.ID, order.OrderType, order.PaymentMethod, order.Price.StringFixed(2))
	s.events.emit(ctx, domain.EventOrderCreated, domain.NotifyNewOrder, order)
	return order, false, nil
}

func (s *OrderService) replay(ctx context.Context, orderID string) (*domain.Order, bool, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return nil, false, domain.Conflict(nil, "an order with this idempotency key is still being processed")
	}
	if err != nil {
		return nil, false, err
	}
	return order, true, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if id == "" || status == "" {
		return nil, domain.Validation("orderId and status are required")
	}
	if !status.Valid() {
		return nil, domain.Validation("unknown status %q", status)
	}

	current, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(current.Status, status, domain.ActorStaff) {
		return nil, domain.Conflict(domain.ErrInvalidTransition, "cannot move order from %s to %s", current.Status, status)
	}

	rows, err := s.orders.UpdateStatus(ctx, id, current.Status, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.Conflict(domain.ErrInvalidTransition, "order %s changed concurrently", id)
	}

	updated, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Printf("[order-svc] order %s: %s -> %s", id, current.Status, status)
	s.events.emit(ctx, domain.EventOrderStatusChanged, domain.NotifyOrderUpdated, updated)
	return updated, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, id)
}

func (s *OrderService) CalculateCart(items []pricing.CartItem) (pricing.Totals, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return pricing.Totals{}, domain.Validation("%v", err)
		}
	}
	return pricing.Summarize(items), nil
}

func (s *OrderService) Receipt(ctx context.Context, id string) (string, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return "", err
	}
	return FormatReceipt(order), nil
}

func (s *OrderService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.orders.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qr.Generate(id)
}
