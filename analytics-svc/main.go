package main

import (
	"log"
	"time"

	httpapi "food-ordering/analytics-svc/internal/api/http"
	"food-ordering/analytics-svc/internal/service"
	"food-ordering/auth"
	"food-ordering/config"
)

func main() {
	cfg := config.Load("8083")
	secret := config.MustJWTSecret(cfg)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	svc := service.NewAnalyticsService(db, rdb)
	issuer := auth.NewIssuer(secret, 24*time.Hour)
	handler := httpapi.NewHandler(svc, issuer)

	log.Printf("Analytics Service starting on port %s", cfg.Port)
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
