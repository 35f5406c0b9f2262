package httpapi

import (
	"net/http"

	"food-ordering/httpx"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(httpx.RequestID, httpx.Logger("order-svc"))
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Idempotency-Key", httpx.RequestIDHeader},
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	httpx.Serve("order-svc", addr, handler)
}
