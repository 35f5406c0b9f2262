package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"food-ordering/pricing"

	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"
)

const (
	currencyEUR    = "EUR"
	maxItemNameLen = 127
	paypalLocale   = "de-DE"
)

var ErrNoCapture = errors.New("paypal response contains no capture")

type PayPalClient struct {
	client *paypal.Client
	brand  string
}

func NewPayPalClient(clientID, secret, apiBase, brand string) (*PayPalClient, error) {
	c, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, err
	}
	return &PayPalClient{client: c, brand: brand}, nil
}

func money(d decimal.Decimal) *paypal.Money {
	return &paypal.Money{Currency: currencyEUR, Value: pricing.FormatAmount(d)}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// CreateProviderOrder registers a CAPTURE order for total and returns its PayPal id.
func (c *PayPalClient) CreateProviderOrder(ctx context.Context, total decimal.Decimal, items []pricing.CartItem) (string, error) {
	lines := make([]paypal.Item, 0, len(items))
	itemTotal := decimal.Zero
	for _, it := range items {
		unit := pricing.Round2(it.Price)
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, paypal.Item{
			Name:       truncate(it.Name, maxItemNameLen),
			UnitAmount: money(unit),
			Quantity:   strconv.Itoa(qty),
		})
		itemTotal = itemTotal.Add(unit.Mul(decimal.NewFromInt(int64(qty))))
	}
	// PayPal rejects an amount that differs from its item breakdown.
	if !itemTotal.Equal(pricing.Round2(total)) {
		return "", fmt.Errorf("item total %s does not match order total %s",
			pricing.FormatAmount(itemTotal), pricing.FormatAmount(total))
	}

	units := []paypal.PurchaseUnitRequest{{
		Amount: &paypal.PurchaseUnitAmount{
			Currency: currencyEUR,
			Value:    pricing.FormatAmount(total),
			Breakdown: &paypal.PurchaseUnitAmountBreakdown{
				ItemTotal: money(itemTotal),
			},
		},
		Items: lines,
	}}
	appCtx := &paypal.ApplicationContext{
		BrandName:  c.brand,
		UserAction: paypal.UserActionPayNow,
		Locale:     paypalLocale,
	}

	order, err := c.client.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, appCtx)
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

// CaptureProviderOrder captures an approved order and returns the capture id.
func (c *PayPalClient) CaptureProviderOrder(ctx context.Context, providerOrderID string) (string, error) {
	resp, err := c.client.CaptureOrder(ctx, providerOrderID, paypal.CaptureOrderRequest{})
	if err != nil {
		return "", err
	}
	if len(resp.PurchaseUnits) == 0 || resp.PurchaseUnits[0].Payments == nil ||
		len(resp.PurchaseUnits[0].Payments.Captures) == 0 {
		return "", ErrNoCapture
	}
	return resp.PurchaseUnits[0].Payments.Captures[0].ID, nil
}
