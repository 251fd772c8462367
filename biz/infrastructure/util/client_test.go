package util_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"course-select/biz/infrastructure/config"
	"course-select/biz/infrastructure/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *util.HttpClient {
	return util.NewHttpClient(&config.Config{
		Payment: config.Payment{IntentURL: url, SecretKey: "sk_test"},
	})
}

func TestCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1234), body["amount"])
		assert.Equal(t, "usd", body["currency"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "pi_123",
			"client_secret": "cs_456",
		})
	}))
	defer srv.Close()

	intent, err := newClient(srv.URL).CreatePaymentIntent(context.Background(), 1234, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "cs_456", intent.ClientSecret)
}

func TestCreatePaymentIntentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).CreatePaymentIntent(context.Background(), 100, "usd")
	assert.Error(t, err)
}

func TestCreatePaymentIntentMissingSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "pi_123"})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).CreatePaymentIntent(context.Background(), 100, "usd")
	assert.Error(t, err)
}
