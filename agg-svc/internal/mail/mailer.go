package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"food-ordering/agg-svc/internal/domain"
	"food-ordering/pricing"

	"gopkg.in/gomail.v2"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body>
<h2>Vielen Dank für Ihre Bestellung!</h2>
<p>Hallo {{.Name}},</p>
<p>wir haben Ihre Bestellung <strong>#{{.ID}}</strong> erhalten.</p>
<ul>
{{- range .Lines}}
<li>{{.}}</li>
{{- end}}
</ul>
<p><strong>Gesamtbetrag: {{.Total}}</strong></p>
</body>
</html>
`))

type confirmationView struct {
	ID    string
	Name  string
	Lines []string
	Total string
}

func Subject(order *domain.Order) string {
	return "Bestellbestätigung #" + order.ID
}

// RenderConfirmation builds the HTML body of the order confirmation.
func RenderConfirmation(order *domain.Order) (string, error) {
	view := confirmationView{
		ID:    order.ID,
		Name:  order.Customer.FullName,
		Total: pricing.FormatEUR(order.Price),
	}
	for _, item := range order.CartItems {
		view.Lines = append(view.Lines, fmt.Sprintf("%d x %s - %s", item.Quantity, item.Name, pricing.FormatEUR(item.LineTotal())))
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sender is the part of gomail.Dialer the mailer needs.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender Sender
	from   string
}

func NewMailer(host string, port int, user, password, from string) *Mailer {
	return &Mailer{sender: gomail.NewDialer(host, port, user, password), from: from}
}

func NewMailerWithSender(sender Sender, from string) *Mailer {
	return &Mailer{sender: sender, from: from}
}

func (m *Mailer) SendConfirmation(order *domain.Order) error {
	if order.Customer.Email == "" {
		return fmt.Errorf("order %s has no email address", order.ID)
	}
	body, err := RenderConfirmation(order)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", order.Customer.Email)
	msg.SetHeader("Subject", Subject(order))
	msg.SetBody("text/html", body)
	return m.sender.DialAndSend(msg)
}
