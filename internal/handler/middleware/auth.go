package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"offerbee-storefront/internal/pkg/clock"
	"offerbee-storefront/internal/pkg/cookie"
	"offerbee-storefront/internal/pkg/token"
	"offerbee-storefront/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	clock clock.Clock
}

const ctxAuthKey = "auth_context"

func NewAuthMiddleware(clk clock.Clock) *AuthMiddleware {
	return &AuthMiddleware{
		clock: clk,
	}
}

// RequireAuth reads the token slot fresh on every request. Only a
// locally provable expiry is rejected here; any other verdict on the
// token belongs to the upstream API.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := extractToken(c)

		if tok == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		if token.Expired(tok, m.clock.Now()) {
			slog.Warn("Expired token presented", "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired, please log in again",
			})
			c.Abort()
			return
		}

		c.Set(ctxAuthKey, shared.AuthContext{Token: tok})
		c.Next()
	}
}

// OptionalAuth attaches an AuthContext when a live token is present but
// never aborts. Checkout uses this: an anonymous cart with no applied
// voucher may still complete.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := extractToken(c)
		if tok == "" || token.Expired(tok, m.clock.Now()) {
			c.Next()
			return
		}

		c.Set(ctxAuthKey, shared.AuthContext{Token: tok})
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if tok := cookie.GetAccessToken(c); tok != "" {
		return tok
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAuthContext(c *gin.Context) shared.AuthContext {
	v, exists := c.Get(ctxAuthKey)
	if !exists {
		return shared.AuthContext{}
	}

	auth, ok := v.(shared.AuthContext)
	if !ok {
		return shared.AuthContext{}
	}
	return auth
}
