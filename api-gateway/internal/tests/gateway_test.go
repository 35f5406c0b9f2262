package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"food-ordering/api-gateway/internal/gateway"
	"food-ordering/api-gateway/internal/mocks"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	MenuSvcURL:      "http://menu-svc",
	OrderSvcURL:     "http://order-svc",
	AnalyticsSvcURL: "http://analytics-svc",
}

func newGateway(t *testing.T, cfg gateway.Config, client gateway.HTTPClient) *gateway.Gateway {
	t.Helper()
	gw, err := gateway.NewGateway(cfg, client)
	require.NoError(t, err)
	return gw
}

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_Health(t *testing.T) {
	gw := newGateway(t, testConfig, nil)

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Upstream(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{name: "categories", path: "/api/fetch-all-category", want: "http://menu-svc", wantOK: true},
		{name: "foods by category", path: "/api/fetch-foods-by-category/3", want: "http://menu-svc", wantOK: true},
		{name: "delivery zone", path: "/api/fetch-deliveryzone/Berlin", want: "http://menu-svc", wantOK: true},
		{name: "compose", path: "/api/compose-cart-item", want: "http://menu-svc", wantOK: true},
		{name: "admin food update", path: "/api/update-food/7", want: "http://menu-svc", wantOK: true},
		{name: "create order", path: "/api/create-order", want: "http://order-svc", wantOK: true},
		{name: "login", path: "/api/login", want: "http://order-svc", wantOK: true},
		{name: "paypal", path: "/api/paypal-capture-order", want: "http://order-svc", wantOK: true},
		{name: "stripe", path: "/api/stripe-create-order", want: "http://order-svc", wantOK: true},
		{name: "print", path: "/api/print-order/abc", want: "http://order-svc", wantOK: true},
		{name: "qrcode", path: "/api/orders/abc/qrcode", want: "http://order-svc", wantOK: true},
		{name: "analytics", path: "/api/analytics/summary", want: "http://analytics-svc", wantOK: true},
		{name: "unknown", path: "/api/unknown", wantOK: false},
	}

	gw := newGateway(t, testConfig, nil)
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, ok := gw.Upstream(testCase.path)

			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestGateway_ProxiesToUpstream(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://order-svc/api/fetch-all-order?limit=5" &&
			req.Header.Get("Authorization") == "Bearer token"
	})).Return(jsonResponse(http.StatusOK, `[{"id":"abc"}]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/fetch-all-order?limit=5", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "abc")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestGateway_KeepsUpstreamStatus(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, testConfig, mockClient)

	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusBadRequest, `{"message":"cartItem must not be empty"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/create-order", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "cartItem")
}

func TestGateway_Uploads(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://menu-svc/uploads/pizza.png"
	})).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("png")),
		Header:     make(http.Header),
	}, nil).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/pizza.png", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())
}

func TestGateway_UnknownAPI(t *testing.T) {
	gw := newGateway(t, testConfig, nil)

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, testConfig, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/fetch-all-foods", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "upstream unavailable")
}

func TestGateway_WebsocketProxy(t *testing.T) {
	upgrader := websocket.Upgrader{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.Equal(t, "/ws/orders", r.URL.Path) {
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()
		conn.WriteJSON(map[string]string{"event": "newOrder"})
	}))
	defer upstream.Close()

	cfg := testConfig
	cfg.OrderSvcURL = upstream.URL
	front := httptest.NewServer(newGateway(t, cfg, nil).SetupRoutes())
	defer front.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(front.URL, "http")+"/ws/orders?token=abc", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame map[string]string
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "newOrder", frame["event"])
}
