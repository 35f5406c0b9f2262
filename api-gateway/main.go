package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"food-ordering/api-gateway/internal/gateway"
	"food-ordering/httpx"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[api-gateway] no .env file loaded: %v", err)
	}

	config := gateway.Config{
		MenuSvcURL:      getEnv("MENU_SVC_URL", "http://localhost:8081"),
		OrderSvcURL:     getEnv("ORDER_SVC_URL", "http://localhost:8082"),
		AnalyticsSvcURL: getEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
	}

	gw, err := gateway.NewGateway(config, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		log.Fatalf("[api-gateway] invalid upstream config: %v", err)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Idempotency-Key", httpx.RequestIDHeader},
	})

	httpx.Serve("api-gateway", ":"+getEnv("PORT", "8080"), c.Handler(gw.SetupRoutes()))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
