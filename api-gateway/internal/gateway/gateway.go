package gateway

import (
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"food-ordering/httpx"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL      string
	OrderSvcURL     string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	ws     *httputil.ReverseProxy
}

// NewGateway fails only when the order service URL cannot be parsed, since
// the websocket proxy is built once up front.
func NewGateway(config Config, client HTTPClient) (*Gateway, error) {
	target, err := url.Parse(config.OrderSvcURL)
	if err != nil {
		return nil, err
	}
	ws := httputil.NewSingleHostReverseProxy(target)
	ws.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("[api-gateway] ws proxy %s: %v", r.URL.Path, err)
		httpx.WriteError(w, http.StatusBadGateway, "upstream unavailable")
	}
	return &Gateway{
		config: config,
		client: client,
		ws:     ws,
	}, nil
}

// orderPrefixes are served by order-svc. Everything else under /api/ that is
// not analytics belongs to the menu catalog.
var orderPrefixes = []string{
	"/api/login",
	"/api/create-order",
	"/api/calculate-cart",
	"/api/fetch-all-order",
	"/api/update-order-status",
	"/api/print-order/",
	"/api/orders/",
	"/api/paypal-",
	"/api/stripe-",
}

var menuPrefixes = []string{
	"/api/fetch-all-category",
	"/api/fetch-foods-by-category/",
	"/api/fetch-all-foods",
	"/api/fetch-food/",
	"/api/fetch-option",
	"/api/fetch-deliveryzone",
	"/api/fetch-extra",
	"/api/compose-cart-item",
	"/api/create-category",
	"/api/delete-category",
	"/api/create-food",
	"/api/update-food/",
	"/api/delete-food",
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Upstream picks the service for an API path; ok is false for unknown routes.
func (g *Gateway) Upstream(path string) (string, bool) {
	switch {
	case strings.HasPrefix(path, "/api/analytics/"):
		return g.config.AnalyticsSvcURL, true
	case hasAnyPrefix(path, orderPrefixes):
		return g.config.OrderSvcURL, true
	case hasAnyPrefix(path, menuPrefixes):
		return g.config.MenuSvcURL, true
	}
	return "", false
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	target := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		log.Printf("[api-gateway] build request %s: %v", target, err)
		httpx.WriteError(w, http.StatusInternalServerError, "invalid upstream request")
		return
	}
	req.Header = r.Header.Clone()

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[api-gateway] proxy %s: %v", target, err)
		httpx.WriteError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		// cors on the gateway owns these
		if strings.HasPrefix(k, "Access-Control-") {
			continue
		}
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[api-gateway] copy response %s: %v", target, err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	upstream, ok := g.Upstream(r.URL.Path)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "API route not found")
		return
	}
	g.ProxyRequest(w, r, upstream)
}

func (g *Gateway) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(httpx.RequestID, httpx.Logger("api-gateway"))
	r.HandleFunc("/health", httpx.Health("api-gateway")).Methods("GET")
	r.PathPrefix("/ws/").Handler(g.ws)
	r.PathPrefix("/uploads/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.ProxyRequest(w, r, g.config.MenuSvcURL)
	})
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
