package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"food-ordering/auth"
	"food-ordering/config"
	httpapi "food-ordering/order-svc/internal/api/http"
	"food-ordering/order-svc/internal/notify"
	"food-ordering/order-svc/internal/payment"
	"food-ordering/order-svc/internal/service"
	"food-ordering/order-svc/internal/storage"
)

func main() {
	cfg := config.Load("8082")
	secret := config.MustJWTSecret(cfg)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	idem := storage.NewIdempotencyStore(rdb)

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	hub := notify.NewHub()
	defer hub.Close()

	var paypalGateway service.PayPalGateway
	if pp, err := payment.NewPayPalClient(cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalAPIBase, cfg.PayPalBrand); err != nil {
		log.Printf("[order-svc] paypal disabled: %v", err)
	} else {
		paypalGateway = pp
	}
	var stripeGateway service.StripeGateway
	if cfg.StripeSecretKey != "" {
		stripeGateway = payment.NewStripeClient(cfg.StripeSecretKey, "")
	} else {
		log.Printf("[order-svc] stripe disabled: STRIPE_SECRET_KEY not set")
	}

	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}
	orders := service.NewOrderService(repo, repo, repo, idem, publisher, hub, qr)
	payments := service.NewPaymentService(repo, paypalGateway, stripeGateway, publisher, hub)

	issuer := auth.NewIssuer(secret, 24*time.Hour)
	admins := service.NewAuthService(repo, issuer)
	if err := admins.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("[order-svc] admin bootstrap failed: %v", err)
	}

	handler := httpapi.NewHandler(orders, payments, admins, issuer, http.HandlerFunc(hub.ServeWS))

	log.Printf("Order Service starting on port %s", cfg.Port)
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
