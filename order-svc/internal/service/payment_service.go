package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/pricing"
)

const stripeSucceeded = "succeeded"

var errProviderNotConfigured = errors.New("provider not configured")

type PaymentService struct {
	orders OrderRepository
	paypal PayPalGateway
	stripe StripeGateway
	events dispatcher
}

func NewPaymentService(orders OrderRepository, paypal PayPalGateway, stripe StripeGateway, publisher EventPublisher, notifier Notifier) *PaymentService {
	return &PaymentService{
		orders: orders,
		paypal: paypal,
		stripe: stripe,
		events: dispatcher{publisher: publisher, notifier: notifier, now: time.Now},
	}
}

// payable loads an order that is still waiting for an online payment of the given kind.
func (s *PaymentService) payable(ctx context.Context, orderID string, method domain.OnlinePaymentMethod) (*domain.Order, error) {
	if orderID == "" {
		return nil, domain.Validation("orderId is required")
	}
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != domain.PaymentOnline || order.OnlinePaymentMethod != method {
		return nil, domain.Validation("order %s is not a %s order", orderID, method)
	}
	if !domain.CanTransition(order.Status, domain.StatusPaid, domain.ActorPayment) {
		return nil, domain.Conflict(domain.ErrInvalidTransition, "order %s is %s", orderID, order.Status)
	}
	return order, nil
}

func (s *PaymentService) PayPalCreateOrder(ctx context.Context, orderID string) (string, error) {
	if s.paypal == nil {
		return "", domain.Provider("paypal", errProviderNotConfigured)
	}
	order, err := s.payable(ctx, orderID, domain.OnlinePayPal)
	if err != nil {
		return "", err
	}

	providerID, err := s.paypal.CreateProviderOrder(ctx, order.Price, order.CartItems)
	if err != nil {
		log.Printf("[order-svc] paypal create for order %s: %v", orderID, err)
		return "", domain.Provider("paypal", err)
	}
	if err := s.orders.SetPaypalOrderID(ctx, orderID, providerID); err != nil {
		return "", err
	}
	return providerID, nil
}

func (s *PaymentService) PayPalCaptureOrder(ctx context.Context, orderID, providerOrderID string) (*domain.Order, error) {
	if s.paypal == nil {
		return nil, domain.Provider("paypal", errProviderNotConfigured)
	}
	order, err := s.payable(ctx, orderID, domain.OnlinePayPal)
	if err != nil {
		return nil, err
	}
	if providerOrderID == "" {
		providerOrderID = order.PaypalOrderID
	}
	if providerOrderID == "" {
		return nil, domain.Validation("paypal order id is required")
	}

	captureID, err := s.paypal.CaptureProviderOrder(ctx, providerOrderID)
	if err != nil {
		log.Printf("[order-svc] paypal capture %s for order %s: %v", providerOrderID, orderID, err)
		return nil, domain.Provider("paypal", err)
	}

	return s.markPaid(ctx, orderID, domain.PaymentRef{
		PaypalOrderID:       providerOrderID,
		PaypalTransactionID: captureID,
	})
}

func (s *PaymentService) StripeCreateOrder(ctx context.Context, orderID string) (domain.PaymentIntent, error) {
	if s.stripe == nil {
		return domain.PaymentIntent{}, domain.Provider("stripe", errProviderNotConfigured)
	}
	order, err := s.payable(ctx, orderID, domain.OnlineGiro)
	if err != nil {
		return domain.PaymentIntent{}, err
	}

	intent, err := s.stripe.CreatePaymentIntent(ctx, pricing.ToMinorUnits(order.Price), "eur", map[string]string{
		"order_id": order.ID,
		"email":    order.PersonalDetail.Email,
	})
	if err != nil {
		log.Printf("[order-svc] stripe intent for order %s: %v", orderID, err)
		return domain.PaymentIntent{}, domain.Provider("stripe", err)
	}
	if err := s.orders.SetStripePaymentIntent(ctx, orderID, intent.ID); err != nil {
		return domain.PaymentIntent{}, err
	}
	return intent, nil
}

func (s *PaymentService) StripeConfirmOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if s.stripe == nil {
		return nil, domain.Provider("stripe", errProviderNotConfigured)
	}
	order, err := s.payable(ctx, orderID, domain.OnlineGiro)
	if err != nil {
		return nil, err
	}
	if order.StripePaymentIntentID == "" {
		return nil, domain.Validation("order %s has no payment intent", orderID)
	}

	status, err := s.stripe.PaymentIntentStatus(ctx, order.StripePaymentIntentID)
	if err != nil {
		log.Printf("[order-svc] stripe status %s for order %s: %v", order.StripePaymentIntentID, orderID, err)
		return nil, domain.Provider("stripe", err)
	}
	if status != stripeSucceeded {
		return nil, domain.Provider("stripe", fmt.Errorf("payment intent is %s", status))
	}

	return s.markPaid(ctx, orderID, domain.PaymentRef{StripePaymentIntentID: order.StripePaymentIntentID})
}

func (s *PaymentService) markPaid(ctx context.Context, orderID string, ref domain.PaymentRef) (*domain.Order, error) {
	rows, err := s.orders.MarkPaid(ctx, orderID, ref)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.Conflict(domain.ErrInvalidTransition, "order %s is no longer awaiting payment", orderID)
	}

	updated, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	log.Printf("[order-svc] order %s paid", orderID)
	s.events.emit(ctx, domain.EventOrderStatusChanged, domain.NotifyOrderUpdated, updated)
	return updated, nil
}
