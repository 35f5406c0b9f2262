package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"food-ordering/auth"
	"food-ordering/httpx"
	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/service"
	"food-ordering/pricing"

	"github.com/gorilla/mux"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Handler struct {
	Orders   service.OrderServiceInterface
	Payments service.PaymentServiceInterface
	Admins   service.AuthServiceInterface
	Auth     *auth.Issuer
	Live     http.Handler
}

func NewHandler(orders service.OrderServiceInterface, payments service.PaymentServiceInterface, admins service.AuthServiceInterface, issuer *auth.Issuer, live http.Handler) *Handler {
	return &Handler{
		Orders:   orders,
		Payments: payments,
		Admins:   admins,
		Auth:     issuer,
		Live:     live,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpx.Health("order-svc")).Methods("GET")

	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/create-order", h.createOrder).Methods("POST")
	r.HandleFunc("/api/calculate-cart", h.calculateCart).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getQRCode).Methods("GET")

	r.HandleFunc("/api/paypal-create-order", h.paypalCreateOrder).Methods("POST")
	r.HandleFunc("/api/paypal-capture-order", h.paypalCaptureOrder).Methods("POST")
	r.HandleFunc("/api/stripe-create-order", h.stripeCreateOrder).Methods("POST")
	r.HandleFunc("/api/stripe-confirm-order", h.stripeConfirmOrder).Methods("POST")

	r.Handle("/api/fetch-all-order", h.protect(h.getOrders)).Methods("GET")
	r.Handle("/api/update-order-status", h.protect(h.updateOrderStatus)).Methods("POST")
	r.Handle("/api/print-order/{id}", h.protect(h.printOrder)).Methods("GET")
	if h.Live != nil {
		r.Handle("/ws/orders", h.protect(h.Live.ServeHTTP)).Methods("GET")
	}
}

func (h *Handler) protect(fn http.HandlerFunc) http.Handler {
	if h.Auth == nil {
		return fn
	}
	return h.Auth.Protect(fn)
}

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindProvider:
		return http.StatusBadGateway
	}
	if errors.Is(err, pricing.ErrUnknownSize) || errors.Is(err, pricing.ErrUnknownExtra) || errors.Is(err, pricing.ErrNotAvailable) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[order-svc] %v", err)
		httpx.WriteError(w, status, "service unavailable")
		return
	}
	httpx.WriteError(w, status, err.Error())
}

func decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.Admins.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type orderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderInput
	if !decode(w, r, &in) {
		return
	}

	order, replayed, err := h.Orders.CreateOrder(r.Context(), in, r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if replayed {
		httpx.WriteJSON(w, http.StatusOK, orderResponse{Message: "Order already created", Order: order})
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, orderResponse{Message: "Order created successfully", Order: order})
}

type cartRequest struct {
	CartItems []pricing.CartItem `json:"cartItem"`
}

func (h *Handler) calculateCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !decode(w, r, &req) {
		return
	}
	totals, err := h.Orders.CalculateCart(req.CartItems)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, totals)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order.StatusView())
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

type statusRequest struct {
	OrderID string        `json:"orderId"`
	Status  domain.Status `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Orders.UpdateOrderStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponse{Message: "Order status updated", Order: order})
}

func (h *Handler) printOrder(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Orders.Receipt(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt))
}

// paymentRequest accepts both spellings the storefront sends: orderId is ours,
// orderID is the PayPal order id handed back by the PayPal buttons.
type paymentRequest struct {
	OrderID       string `json:"orderId"`
	PayPalOrderID string `json:"orderID"`
}

func (h *Handler) paypalCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decode(w, r, &req) {
		return
	}
	id, err := h.Payments.PayPalCreateOrder(r.Context(), req.OrderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) paypalCaptureOrder(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Payments.PayPalCaptureOrder(r.Context(), req.OrderID, req.PayPalOrderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponse{Message: "Payment captured", Order: order})
}

func (h *Handler) stripeCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decode(w, r, &req) {
		return
	}
	intent, err := h.Payments.StripeCreateOrder(r.Context(), req.OrderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, intent)
}

func (h *Handler) stripeConfirmOrder(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Payments.StripeConfirmOrder(r.Context(), req.OrderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponse{Message: "Payment confirmed", Order: order})
}
