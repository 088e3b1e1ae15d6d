package api

import (
	"errors"
	"net/http"

	"offerbee-storefront/internal/domain/voucher"
	reqdto "offerbee-storefront/internal/handler/dto/request"
	resdto "offerbee-storefront/internal/handler/dto/response"
	"offerbee-storefront/internal/handler/middleware"
	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/commands"
	"offerbee-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherCommands commands.VoucherCommands
	voucherQueries  queries.VoucherQueries
}

func NewVoucherHandler(voucherCommands commands.VoucherCommands, voucherQueries queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{
		voucherCommands: voucherCommands,
		voucherQueries:  voucherQueries,
	}
}

// @Summary List my vouchers
// @Description Fetch the merchant's vouchers with display-ready status
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VoucherListResponse
// @Failure 401 {object} map[string]string
// @Router /vouchers [get]
func (h *VoucherHandler) ListMine(c *gin.Context) {
	auth := middleware.GetAuthContext(c)

	rows, err := h.voucherQueries.ListMine(c.Request.Context(), auth)
	if err != nil {
		h.renderUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherRows(rows))
}

// @Summary Create voucher
// @Description Create a new voucher through the upstream API
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	err = h.voucherCommands.Create(c.Request.Context(), middleware.GetAuthContext(c), draft, req.EligibilityCriteria())
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		h.renderUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Voucher created",
	})
}

// @Summary Delete voucher
// @Description Delete a voucher by its upstream ID
// @Tags vouchers
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /vouchers/{id} [delete]
func (h *VoucherHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Voucher ID required",
		})
		return
	}

	err := h.voucherCommands.Delete(c.Request.Context(), middleware.GetAuthContext(c), id)
	if err != nil {
		if errors.Is(err, errs.ErrVoucherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Voucher not found",
			})
			return
		}
		h.renderUpstreamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Generate voucher code
// @Description Produce a random code for the create form
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.GeneratedCodeResponse
// @Router /vouchers/generate-code [get]
func (h *VoucherHandler) GenerateCode(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.GeneratedCodeResponse{
		Code: voucher.GenerateCode().String(),
	})
}

// renderUpstreamError surfaces the server's own message on a rejection;
// the upstream response text is what the dashboard shows the merchant.
func (h *VoucherHandler) renderUpstreamError(c *gin.Context, err error) {
	if status, message, ok := infra.RejectionDetails(err); ok {
		if message == "" {
			message = "Request rejected"
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
