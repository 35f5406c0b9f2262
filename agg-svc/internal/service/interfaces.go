package service

import (
	"context"

	"food-ordering/agg-svc/internal/domain"
	"food-ordering/agg-svc/internal/mail"
	"food-ordering/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Claim(ctx context.Context, eventType, orderID string) (bool, error)
	RecordOrder(ctx context.Context, order *domain.Order) error
	RevertOrder(ctx context.Context, order *domain.Order) error
}

type MailerInterface interface {
	SendConfirmation(order *domain.Order) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.OrderEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MailerInterface   = (*mail.Mailer)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
