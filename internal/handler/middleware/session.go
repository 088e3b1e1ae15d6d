package middleware

import (
	"offerbee-storefront/internal/pkg/config"
	"offerbee-storefront/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "cart_session_id"

// CartSession guarantees every request carries a parseable session ID,
// minting one on first contact. The store creates the matching entry
// lazily on first write.
func CartSession(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(cookie.GetCartSessionID(c))
		if err != nil {
			id = uuid.New()
			cookie.SetCartSessionID(c, cfg, id.String())
		}

		c.Set(ctxSessionIDKey, id)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) uuid.UUID {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil
	}

	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
