package service

import (
	"fmt"
	"strings"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/pricing"
)

const receiptWidth = 32

// FormatReceipt renders the plain-text kitchen ticket.
func FormatReceipt(order *domain.Order) string {
	var b strings.Builder
	rule := strings.Repeat("-", receiptWidth)

	fmt.Fprintf(&b, "BESTELLUNG #%s\n", order.ID)
	fmt.Fprintf(&b, "%s\n", order.CreatedAt.Format("02.01.2006 15:04"))
	b.WriteString(rule + "\n")

	for _, item := range order.CartItems {
		fmt.Fprintf(&b, "%d x %s - %s\n", item.Quantity, item.Name, pricing.FormatEUR(item.LineTotal()))
		for _, opt := range item.Options {
			for _, v := range opt.Values {
				fmt.Fprintf(&b, "   %s: %s\n", opt.Name, v.Value)
			}
		}
		if c := strings.TrimSpace(item.Comment); c != "" {
			fmt.Fprintf(&b, "   Hinweis: %s\n", c)
		}
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "GESAMT: %s\n", pricing.FormatEUR(order.Price))
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "%s\n%s\n", order.PersonalDetail.FullName, order.PersonalDetail.Phone)
	if addr := order.DeliveryAddress; addr != nil {
		fmt.Fprintf(&b, "%s\n%s %s\n", addr.Street, addr.PostalCode, addr.City)
		if addr.Floor != "" {
			fmt.Fprintf(&b, "Etage: %s\n", addr.Floor)
		}
		if addr.Comment != "" {
			fmt.Fprintf(&b, "%s\n", addr.Comment)
		}
	} else {
		b.WriteString("ABHOLUNG\n")
	}

	payment := string(order.PaymentMethod)
	if order.OnlinePaymentMethod != "" {
		payment += " (" + string(order.OnlinePaymentMethod) + ")"
	}
	fmt.Fprintf(&b, "Zahlung: %s\n", payment)
	return b.String()
}
