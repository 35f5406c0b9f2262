package httpapi

import (
	"errors"
	"log"
	"net/http"

	"food-ordering/analytics-svc/internal/domain"
	"food-ordering/analytics-svc/internal/service"
	"food-ordering/auth"
	"food-ordering/httpx"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Auth      *auth.Issuer
}

func NewHandler(svc service.AnalyticsInterface, issuer *auth.Issuer) *Handler {
	return &Handler{Analytics: svc, Auth: issuer}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpx.Health("analytics-svc")).Methods("GET")
	r.Handle("/api/analytics/summary", h.protect(h.getSummary)).Methods("GET")
	r.Handle("/api/analytics/top-today", h.protect(h.getTopToday)).Methods("GET")
	r.Handle("/api/analytics/top-alltime", h.protect(h.getTopAllTime)).Methods("GET")
}

func (h *Handler) protect(fn http.HandlerFunc) http.Handler {
	if h.Auth == nil {
		return fn
	}
	return h.Auth.Protect(fn)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidDate) {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("[analytics-svc] %v", err)
	httpx.WriteError(w, http.StatusInternalServerError, "service unavailable")
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, data)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopAllTime(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, data)
}
