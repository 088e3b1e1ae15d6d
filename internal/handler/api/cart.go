package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "offerbee-storefront/internal/handler/dto/request"
	resdto "offerbee-storefront/internal/handler/dto/response"
	"offerbee-storefront/internal/handler/middleware"
	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/commands"
	"offerbee-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Storefront catalog
// @Description List the products offered on the storefront
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /products [get]
func (h *CartHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCatalog(h.cartQueries.Catalog()))
}

// @Summary View cart
// @Description Render the session cart with totals and applied voucher
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart [get]
func (h *CartHandler) View(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartQueries.View(middleware.GetSessionID(c)))
}

// @Summary Add item
// @Description Add one unit of a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} queries.CartView
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.cartCommands.AddItem(c.Request.Context(), sessionID, req.ProductID); err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartQueries.View(sessionID))
}

// @Summary Remove item
// @Description Remove a product line from the cart
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} queries.CartView
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.cartCommands.RemoveItem(c.Request.Context(), sessionID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartQueries.View(sessionID))
}

// @Summary Set quantity
// @Description Set a cart line's quantity; values below one are rejected
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} queries.CartView
// @Failure 422 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.cartCommands.SetQuantity(c.Request.Context(), sessionID, productID, req.Quantity); err != nil {
		if errors.Is(err, errs.ErrInvalidQuantity) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Quantity must be at least 1",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartQueries.View(sessionID))
}

// @Summary Apply voucher
// @Description Dry-run voucher validation against the upstream API
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AppliedVoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/voucher [post]
func (h *CartHandler) ApplyVoucher(c *gin.Context) {
	var req reqdto.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	summary, err := h.cartCommands.ApplyVoucher(c.Request.Context(), middleware.GetAuthContext(c), middleware.GetSessionID(c), req.VoucherCode)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyVoucherCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Enter a voucher code first",
			})
		case errors.Is(err, errs.ErrCartChanged):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart changed, apply the voucher again",
			})
		default:
			h.renderVoucherError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppliedVoucher(summary))
}

// @Summary Remove voucher
// @Description Drop the applied voucher and clear the code field
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart/voucher [delete]
func (h *CartHandler) RemoveVoucher(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.cartCommands.RemoveVoucher(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartQueries.View(sessionID))
}

// @Summary Checkout
// @Description Commit the cart, consuming the applied voucher if any
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.cartCommands.Checkout(c.Request.Context(), middleware.GetAuthContext(c), middleware.GetSessionID(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Log in to checkout with a voucher",
			})
		case errors.Is(err, errs.ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checkout already in progress",
			})
		default:
			h.renderVoucherError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// renderVoucherError shows the upstream rejection text verbatim; the
// server's message ("Voucher expired", minimum cart value not met, ...)
// is the storefront's toast copy.
func (h *CartHandler) renderVoucherError(c *gin.Context, err error) {
	if status, message, ok := infra.RejectionDetails(err); ok {
		if message == "" {
			message = "Voucher was rejected"
		}
		if status == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": message})
		return
	}

	if errors.Is(err, errs.ErrUpstreamUnreachable) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Voucher service unavailable, please try again",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
