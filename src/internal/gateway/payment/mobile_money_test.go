package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func mobileMoneyConfig(baseURL string) *viper.Viper {
	v := viper.New()
	v.Set("payment.momo.base_url", baseURL)
	v.Set("payment.momo.app_id", "app-id")
	v.Set("payment.momo.app_secret", "app-secret")
	return v
}

func TestMobileMoneyCreatePayment(t *testing.T) {
	var tokenCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token/":
			atomic.AddInt32(&tokenCalls, 1)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"token":      "tok-1",
				"expires_in": 3600,
			})
		case "/api/collect/":
			assert.Equal(t, "Token tok-1", r.Header.Get("Authorization"))
			var payload map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "CMD-20250101-1234", payload["external_reference"])
			_ = json.NewEncoder(w).Encode(map[string]string{
				"reference": "ref-99",
				"status":    "PENDING",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gateway := NewMobileMoneyGateway(mobileMoneyConfig(server.URL), server.Client(), testLogger())

	resp, err := gateway.CreatePayment(context.Background(), &CreateRequest{
		OrderNumber:   "CMD-20250101-1234",
		Amount:        5000,
		Currency:      "XAF",
		CustomerPhone: "670000000",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ref-99", resp.Reference)

	// second call reuses the cached token
	_, err = gateway.CreatePayment(context.Background(), &CreateRequest{OrderNumber: "CMD-2"})
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestMobileMoneyGetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token/":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"token":      "tok-1",
				"expires_in": 3600,
			})
		case "/api/transaction/ref-99/":
			assert.Equal(t, "Token tok-1", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status":   "SUCCESSFUL",
				"amount":   5000.0,
				"currency": "XAF",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gateway := NewMobileMoneyGateway(mobileMoneyConfig(server.URL), server.Client(), testLogger())

	resp, err := gateway.GetStatus(context.Background(), &StatusRequest{Reference: "ref-99"})
	assert.NoError(t, err)
	assert.Equal(t, "SUCCESSFUL", resp.Status)
	assert.Equal(t, int64(5000), resp.Amount)
	assert.Equal(t, "XAF", resp.Currency)
}

func TestMobileMoneyTokenFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gateway := NewMobileMoneyGateway(mobileMoneyConfig(server.URL), server.Client(), testLogger())

	_, err := gateway.CreatePayment(context.Background(), &CreateRequest{OrderNumber: "CMD-1"})
	assert.Error(t, err)
}
