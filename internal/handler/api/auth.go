package api

import (
	"errors"
	"net/http"

	reqdto "offerbee-storefront/internal/handler/dto/request"
	resdto "offerbee-storefront/internal/handler/dto/response"
	"offerbee-storefront/internal/handler/httperr"
	"offerbee-storefront/internal/pkg/config"
	"offerbee-storefront/internal/pkg/cookie"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cookieCfg,
	}
}

// @Summary User login
// @Description Login against the upstream API and store the issued token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, errs.ErrUpstreamUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Login service unavailable, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// The cookie is the token slot: overwritten wholesale on every login.
	cookie.SetAccessToken(c, h.cookieCfg, token)

	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: token})
}

// @Summary User signup
// @Description Register a new merchant account with the upstream API
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.authCommands.Signup(c.Request.Context(), req.ToDomain())
	if err != nil {
		if fields, ok := errs.ValidationFields(err); ok {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fields)
			return
		}
		switch {
		case errors.Is(err, errs.ErrSignupRejected):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Signup was rejected, the email may already be registered",
			})
		case errors.Is(err, errs.ErrUpstreamUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Signup service unavailable, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SignupResponse{
		Message: "Account created, please log in",
	})
}

// @Summary User logout
// @Description Erase the stored access token
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Logout is local erasure of the token slot; the upstream API keeps
	// no session to tear down.
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
