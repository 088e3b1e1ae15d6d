//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"offerbee-storefront/internal/handler/middleware"
	"offerbee-storefront/internal/pkg/config"
	"offerbee-storefront/internal/pkg/cookie"
	"offerbee-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seen := &uuid.UUID{}
	router := gin.New()
	router.GET("/probe", middleware.CartSession(config.NewTestConfig().Cookie), func(c *gin.Context) {
		*seen = middleware.GetSessionID(c)
		c.Status(http.StatusNoContent)
	})
	return router, seen
}

func TestCartSession(t *testing.T) {
	t.Run("first contact mints an ID and sets the cookie", func(t *testing.T) {
		router, seen := newSessionRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/probe", nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEqual(t, uuid.Nil, *seen)

		ck := httptest.ExtractCookie(rec, cookie.CartSessionCookieName)
		require.NotNil(t, ck)
		assert.Equal(t, seen.String(), ck.Value)
		assert.True(t, ck.HttpOnly)
	})

	t.Run("existing cookie is reused untouched", func(t *testing.T) {
		router, seen := newSessionRouter(t)
		id := uuid.New()

		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/probe", nil,
			[]*http.Cookie{{Name: cookie.CartSessionCookieName, Value: id.String()}}, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, id, *seen)
		assert.Nil(t, httptest.ExtractCookie(rec, cookie.CartSessionCookieName))
	})

	t.Run("garbled cookie is replaced", func(t *testing.T) {
		router, seen := newSessionRouter(t)

		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/probe", nil,
			[]*http.Cookie{{Name: cookie.CartSessionCookieName, Value: "not-a-uuid"}}, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEqual(t, uuid.Nil, *seen)

		ck := httptest.ExtractCookie(rec, cookie.CartSessionCookieName)
		require.NotNil(t, ck)
		assert.NotEqual(t, "not-a-uuid", ck.Value)
	})
}

func TestGetSessionID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("absent key falls back to the nil ID", func(t *testing.T) {
		c, _ := gin.CreateTestContext(stdhttptest.NewRecorder())

		assert.Equal(t, uuid.Nil, middleware.GetSessionID(c))
	})
}
