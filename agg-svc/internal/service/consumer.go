package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"food-ordering/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Mailer MailerInterface
}

func NewConsumer(reader MessageReader, store StoreInterface, mailer MailerInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Mailer: mailer,
	}
}

// Start reads the orders topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[agg-svc] consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Println("[agg-svc] consumer stopped")
				return
			}
			log.Printf("[agg-svc] read message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[agg-svc] decode message at offset %d: %v", message.Offset, err)
			continue
		}
		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Order == nil {
		return
	}
	switch {
	case event.Type == domain.EventOrderCreated:
		c.orderCreated(ctx, event.Order)
	case event.Type == domain.EventOrderStatusChanged && event.Status == domain.StatusCancelled:
		c.orderCancelled(ctx, event.Order)
	}
}

// claim guards against applying a redelivered event twice. When Redis cannot
// answer, the event is processed anyway.
func (c *Consumer) claim(ctx context.Context, eventType, orderID string) bool {
	fresh, err := c.Store.Claim(ctx, eventType, orderID)
	if err != nil {
		log.Printf("[agg-svc] claim %s for order %s: %v", eventType, orderID, err)
		return true
	}
	if !fresh {
		log.Printf("[agg-svc] skipping duplicate %s for order %s", eventType, orderID)
	}
	return fresh
}

func (c *Consumer) orderCreated(ctx context.Context, order *domain.Order) {
	if !c.claim(ctx, domain.EventOrderCreated, order.ID) {
		return
	}

	if c.Mailer != nil {
		if err := c.Mailer.SendConfirmation(order); err != nil {
			log.Printf("[agg-svc] confirmation mail for order %s: %v", order.ID, err)
		} else {
			log.Printf("[agg-svc] confirmation sent for order %s", order.ID)
		}
	}

	if err := c.Store.RecordOrder(ctx, order); err != nil {
		log.Printf("[agg-svc] record order %s: %v", order.ID, err)
		return
	}
	log.Printf("[agg-svc] recorded order %s total=%s", order.ID, order.Price.StringFixed(2))
}

func (c *Consumer) orderCancelled(ctx context.Context, order *domain.Order) {
	if !c.claim(ctx, domain.StatusCancelled, order.ID) {
		return
	}
	if err := c.Store.RevertOrder(ctx, order); err != nil {
		log.Printf("[agg-svc] revert order %s: %v", order.ID, err)
		return
	}
	log.Printf("[agg-svc] reverted cancelled order %s", order.ID)
}
