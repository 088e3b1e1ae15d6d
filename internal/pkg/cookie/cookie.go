package cookie

import (
	"net/http"

	"offerbee-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// The access-token cookie is the single named slot for the upstream-issued
// bearer token: written on login, erased on logout, read fresh on every
// authenticated call. The cart-session cookie only carries the session ID;
// all session state stays server-side.
const (
	AccessTokenCookieName = "access_token"
	CartSessionCookieName = "cart_session"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		token,
		int(cfg.TokenMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func SetCartSessionID(c *gin.Context, cfg config.CookieConfig, id string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	// Session cookie: no Max-Age, dies with the browser session like the
	// cart state it points at.
	c.SetCookie(
		CartSessionCookieName,
		id,
		0,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetCartSessionID(c *gin.Context) string {
	id, _ := c.Cookie(CartSessionCookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
