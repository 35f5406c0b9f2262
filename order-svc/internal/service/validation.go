package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/pricing"

	"github.com/shopspring/decimal"
)

// MinimumOrderValue applies to every order regardless of type or zone.
var MinimumOrderValue = decimal.NewFromInt(12)

// buildOrder checks the checkout payload and returns a normalized order
// without id, status or timestamps.
func buildOrder(in domain.OrderInput) (*domain.Order, error) {
	if len(in.CartItems) == 0 {
		return nil, domain.Validation("cart is empty")
	}
	items := make([]pricing.CartItem, len(in.CartItems))
	for i, item := range in.CartItems {
		if err := item.Validate(); err != nil {
			return nil, domain.Validation("%v", err)
		}
		item.Name = strings.TrimSpace(item.Name)
		items[i] = item
	}

	person := domain.PersonalDetail{
		FullName: strings.TrimSpace(in.PersonalDetail.FullName),
		Phone:    strings.TrimSpace(in.PersonalDetail.Phone),
		Email:    strings.TrimSpace(in.PersonalDetail.Email),
	}
	switch {
	case person.FullName == "":
		return nil, domain.Validation("full name is required")
	case person.Phone == "":
		return nil, domain.Validation("phone is required")
	case person.Email == "":
		return nil, domain.Validation("email is required")
	}

	order := &domain.Order{
		CartItems:      items,
		PersonalDetail: person,
		OrderType:      in.OrderType,
		PaymentMethod:  in.PaymentMethod,
		Price:          pricing.CartTotal(items),
	}

	switch in.OrderType {
	case domain.OrderTypeDelivery:
		if in.DeliveryAddress == nil {
			return nil, domain.Validation("delivery address is required")
		}
		addr := *in.DeliveryAddress
		addr.Street = strings.TrimSpace(addr.Street)
		addr.PostalCode = strings.TrimSpace(addr.PostalCode)
		addr.City = strings.TrimSpace(addr.City)
		if addr.Street == "" || addr.PostalCode == "" || addr.City == "" {
			return nil, domain.Validation("street, postal code and city are required for delivery")
		}
		order.DeliveryAddress = &addr
	case domain.OrderTypePickup:
		order.DeliveryAddress = nil
	default:
		return nil, domain.Validation("unknown order type %q", in.OrderType)
	}

	switch in.PaymentMethod {
	case domain.PaymentCash:
	case domain.PaymentOnline:
		switch in.OnlinePaymentMethod {
		case domain.OnlinePayPal, domain.OnlineGiro:
			order.OnlinePaymentMethod = in.OnlinePaymentMethod
		default:
			return nil, domain.Validation("online payment requires paypal or giro")
		}
	default:
		return nil, domain.Validation("unknown payment method %q", in.PaymentMethod)
	}

	if order.Price.LessThan(MinimumOrderValue) {
		return nil, domain.Validation("minimum order value is %s", pricing.FormatEUR(MinimumOrderValue))
	}
	return order, nil
}

// priceItems composes every submitted line again from the catalog. A line whose
// unit price differs from the catalog price is rejected; the stored snapshot is
// the server-composed one.
func (s *OrderService) priceItems(ctx context.Context, items []pricing.CartItem) ([]pricing.CartItem, error) {
	priced := make([]pricing.CartItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, domain.Validation("%v", err)
		}
		if item.FoodID <= 0 {
			return nil, domain.Validation("cart item %q has no foodId", strings.TrimSpace(item.Name))
		}

		catalogItem, err := s.catalog.PricingItem(ctx, item.FoodID)
		if errors.Is(err, domain.ErrFoodNotFound) {
			return nil, domain.Validation("food %d is not on the menu", item.FoodID)
		}
		if err != nil {
			return nil, err
		}

		composed, err := pricing.Compose(catalogItem, item.Selection())
		if err != nil {
			return nil, domain.Validation("%s: %v", catalogItem.Name, err)
		}
		if !composed.Price.Equal(item.Price) {
			log.Printf("[order-svc] food %d submitted at %s, catalog price %s", item.FoodID, item.Price, composed.Price)
			return nil, domain.Validation("price of %s is %s", composed.Name, pricing.FormatEUR(composed.Price))
		}
		priced = append(priced, composed)
	}
	return priced, nil
}
