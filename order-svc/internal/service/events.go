package service

import (
	"context"
	"log"
	"time"

	"food-ordering/order-svc/internal/domain"
)

// dispatcher fans an order change out to Kafka and to connected admin
// clients. Both are best effort.
type dispatcher struct {
	publisher EventPublisher
	notifier  Notifier
	now       func() time.Time
}

func (d dispatcher) emit(ctx context.Context, eventType, notifyEvent string, order *domain.Order) {
	if d.publisher != nil {
		event := domain.OrderEvent{
			Type:      eventType,
			OrderID:   order.ID,
			Status:    order.Status,
			Order:     order,
			Timestamp: d.now(),
		}
		if err := d.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("[order-svc] publish %s for order %s: %v", eventType, order.ID, err)
		}
	}
	if d.notifier != nil {
		d.notifier.Broadcast(notifyEvent, order)
	}
}
