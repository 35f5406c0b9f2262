package mail

import (
	"bytes"
	"errors"
	"testing"

	"food-ordering/agg-svc/internal/domain"
	"food-ordering/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	sent []*gomail.Message
	err  error
}

func (r *recordingSender) DialAndSend(m ...*gomail.Message) error {
	r.sent = append(r.sent, m...)
	return r.err
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID: "abc",
		CartItems: []pricing.CartItem{
			{Name: "Pizza Margherita", Quantity: 2, Price: decimal.RequireFromString("13.50")},
			{Name: "Tiramisu <hausgemacht>", Quantity: 1, Price: decimal.RequireFromString("4.90")},
		},
		Customer: domain.Customer{FullName: "Max Muster", Email: "max@example.com"},
		Price:    decimal.RequireFromString("31.90"),
	}
}

func TestRenderConfirmation(t *testing.T) {
	body, err := RenderConfirmation(sampleOrder())

	require.NoError(t, err)
	assert.Contains(t, body, "Vielen Dank für Ihre Bestellung!")
	assert.Contains(t, body, "#abc")
	assert.Contains(t, body, "2 x Pizza Margherita - 27,00 €")
	assert.Contains(t, body, "Tiramisu &lt;hausgemacht&gt;")
	assert.Contains(t, body, "Gesamtbetrag: 31,90 €")
}

func TestSendConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		senderErr error
		wantSent  int
		wantErr   bool
	}{
		{name: "sent", email: "max@example.com", wantSent: 1},
		{name: "smtp failure", email: "max@example.com", senderErr: errors.New("dial tcp: connection refused"), wantSent: 1, wantErr: true},
		{name: "no address", email: "", wantSent: 0, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sender := &recordingSender{err: testCase.senderErr}
			mailer := NewMailerWithSender(sender, "shop@example.com")
			order := sampleOrder()
			order.Customer.Email = testCase.email

			err := mailer.SendConfirmation(order)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, sender.sent, testCase.wantSent)
			if testCase.wantSent == 0 {
				return
			}
			msg := sender.sent[0]
			assert.Equal(t, []string{"max@example.com"}, msg.GetHeader("To"))
			assert.Equal(t, []string{"Bestellbestätigung #abc"}, msg.GetHeader("Subject"))

			var buf bytes.Buffer
			_, err = msg.WriteTo(&buf)
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "text/html")
		})
	}
}
