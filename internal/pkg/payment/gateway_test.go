package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *RazorpayClient {
	return &RazorpayClient{
		KeyID:      "rzp_test_key",
		KeySecret:  "rzp_test_secret",
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestRazorpayClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var in CreateOrderInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(49999), in.Amount)
		assert.Equal(t, "INR", in.Currency)

		json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_test123",
			Amount:   in.Amount,
			Currency: in.Currency,
			Receipt:  in.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	order, err := client.CreateOrder(context.Background(), CreateOrderInput{
		Amount:   49999,
		Currency: "INR",
		Receipt:  "receipt-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, int64(49999), order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestRazorpayClient_CreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateOrder(context.Background(), CreateOrderInput{
		Amount:   100,
		Currency: "INR",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestRazorpayClient_CreateOrder_EmptyOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":""}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateOrder(context.Background(), CreateOrderInput{
		Amount:   100,
		Currency: "INR",
	})
	assert.Error(t, err)
}

func TestRazorpayClient_CreateOrder_InputValidation(t *testing.T) {
	client := newTestClient("http://gateway.invalid")

	t.Run("Missing credentials", func(t *testing.T) {
		bare := &RazorpayClient{BaseURL: "http://gateway.invalid", HTTPClient: http.DefaultClient}
		_, err := bare.CreateOrder(context.Background(), CreateOrderInput{Amount: 100, Currency: "INR"})
		assert.Error(t, err)
	})

	t.Run("Zero amount", func(t *testing.T) {
		_, err := client.CreateOrder(context.Background(), CreateOrderInput{Amount: 0, Currency: "INR"})
		assert.Error(t, err)
	})

	t.Run("Missing currency", func(t *testing.T) {
		_, err := client.CreateOrder(context.Background(), CreateOrderInput{Amount: 100})
		assert.Error(t, err)
	})
}
