//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/infra/upstream"
	"offerbee-storefront/internal/pkg/config"
	"offerbee-storefront/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.UpstreamConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}
	return upstream.NewClient(cfg, slog.Default())
}

func TestLogin(t *testing.T) {
	t.Run("posts credentials and returns the token", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/user/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "merchant@example.com", body["email"])
			assert.Equal(t, "secret123", body["password"])

			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
		}))

		token, err := client.Login(context.Background(), "merchant@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("rejection carries the server message", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
		}))

		_, err := client.Login(context.Background(), "merchant@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRejected))

		status, message, ok := infra.RejectionDetails(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid credentials", message)
	})

	t.Run("unreachable server is classified as such", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		cfg := config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second}
		client := upstream.NewClient(cfg, slog.Default())

		_, err := client.Login(context.Background(), "a@b.c", "pw")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnreachable))
	})
}

func TestListMine(t *testing.T) {
	t.Run("sends the bearer token and maps wire fields", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/voucher/my-vouchers", r.URL.Path)
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(`[{
				"_id": "68a1f0c2b7e4d3a9c5f61234",
				"name": "Summer Sale",
				"voucherCode": "SUMMER20",
				"discountType": "percentage",
				"discountValue": 20,
				"activationDate": "2026-06-01T00:00:00Z",
				"expiryDate": "2026-09-01T00:00:00Z",
				"usageCount": 3,
				"usageLimit": 100,
				"totalUsageCount": 3,
				"isActive": true,
				"reusable": false
			}]`))
		}))

		records, err := client.ListMine(context.Background(), shared.AuthContext{Token: "tok-123"})
		require.NoError(t, err)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, "68a1f0c2b7e4d3a9c5f61234", rec.ID)
		assert.Equal(t, "SUMMER20", rec.Code)
		assert.Equal(t, 20.0, rec.DiscountValue)
		assert.Equal(t, 3, rec.UsageCount)
		assert.Nil(t, rec.MinCartValue)
	})
}

func TestApply(t *testing.T) {
	t.Run("sends code and cart value, returns server figures untouched", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/voucher/apply-voucher", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "SUMMER20", body["voucherCode"])
			assert.InDelta(t, 159.98, body["cartValue"].(float64), 1e-9)

			_, _ = w.Write([]byte(`{
				"voucher": {"_id": "x", "name": "Summer Sale", "voucherCode": "SUMMER20", "discountType": "percentage", "discountValue": 20, "activationDate": "2026-06-01T00:00:00Z", "expiryDate": "2026-09-01T00:00:00Z", "usageLimit": 100, "isActive": true},
				"discountAmount": 31.996,
				"finalPrice": 127.984,
				"message": "Voucher applied successfully"
			}`))
		}))

		rec, err := client.Apply(context.Background(), shared.AuthContext{Token: "tok"}, "SUMMER20", 159.98)
		require.NoError(t, err)
		assert.InDelta(t, 31.996, rec.DiscountAmount, 1e-9)
		assert.InDelta(t, 127.984, rec.FinalPrice, 1e-9)
		assert.Equal(t, "Voucher applied successfully", rec.Message)
		assert.Equal(t, "Summer Sale", rec.Voucher.Name)
	})

	t.Run("ineligible voucher surfaces the rejection message", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Cart value below minimum"})
		}))

		_, err := client.Apply(context.Background(), shared.AuthContext{Token: "tok"}, "SUMMER20", 10)
		require.Error(t, err)
		_, message, ok := infra.RejectionDetails(err)
		require.True(t, ok)
		assert.Equal(t, "Cart value below minimum", message)
	})
}

func TestConsume(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voucher/use-voucher", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "SUMMER20", body["voucherCode"])

		_, _ = w.Write([]byte(`{
			"voucher": {"_id": "x", "voucherCode": "SUMMER20", "usageCount": 1, "usageLimit": 100, "isActive": true},
			"message": "Voucher used"
		}`))
	}))

	rec, err := client.Consume(context.Background(), shared.AuthContext{Token: "tok"}, "SUMMER20", 159.98)
	require.NoError(t, err)
	assert.Equal(t, "Voucher used", rec.Message)
	assert.Equal(t, 1, rec.Voucher.UsageCount)
}

func TestDelete(t *testing.T) {
	t.Run("targets the id path", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/voucher/delete/abc123", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))

		assert.NoError(t, client.Delete(context.Background(), shared.AuthContext{Token: "tok"}, "abc123"))
	})

	t.Run("missing voucher is a 404 rejection", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Voucher not found"})
		}))

		err := client.Delete(context.Background(), shared.AuthContext{Token: "tok"}, "missing")
		status, _, ok := infra.RejectionDetails(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
