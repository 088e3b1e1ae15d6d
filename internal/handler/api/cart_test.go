//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"testing"

	"offerbee-storefront/internal/handler/api"
	reqdto "offerbee-storefront/internal/handler/dto/request"
	resdto "offerbee-storefront/internal/handler/dto/response"
	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/commands"
	"offerbee-storefront/internal/usecase/queries"
	"offerbee-storefront/tests/common/httptest"
	commandsmock "offerbee-storefront/tests/mock/commands"
	queriesmock "offerbee-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/products", s.handler.Catalog)
	s.router.GET("/cart", s.handler.View)
	s.router.POST("/cart/items", s.handler.AddItem)
	s.router.DELETE("/cart/items/:id", s.handler.RemoveItem)
	s.router.PATCH("/cart/items/:id", s.handler.SetQuantity)
	s.router.POST("/cart/voucher", s.handler.ApplyVoucher)
	s.router.DELETE("/cart/voucher", s.handler.RemoveVoucher)
	s.router.POST("/cart/checkout", s.handler.Checkout)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestCatalog() {
	s.mockQueries.EXPECT().Catalog().Return([]queries.ProductView{
		{ID: 1, Name: "RK 64 Mechanical Keyboard", Price: 149.99, Image: "/keyboard.jpg"},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

	var response resdto.CatalogResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Products, 1)
	s.Equal("RK 64 Mechanical Keyboard", response.Products[0].Name)
}

func (s *CartHandlerTestSuite) TestAddItem() {
	s.Run("success: returns the refreshed cart view", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().View(gomock.Any()).
			Return(&queries.CartView{Subtotal: 149.99, Total: 149.99}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqdto.AddItemRequest{ProductID: 1}, "")

		var view queries.CartView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.InDelta(149.99, view.Total, 1e-9)
	})

	s.Run("error: 404 for an unknown product", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), int64(99)).
			Return(errs.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", reqdto.AddItemRequest{ProductID: 99}, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestSetQuantity() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), gomock.Any(), int64(1), 3).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().View(gomock.Any()).
			Return(&queries.CartView{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/1", reqdto.SetQuantityRequest{Quantity: 3}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 422 on a rejected quantity", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), gomock.Any(), int64(1), -1).
			Return(errs.ErrInvalidQuantity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/1", reqdto.SetQuantityRequest{Quantity: -1}, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/abc", reqdto.SetQuantityRequest{Quantity: 2}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestApplyVoucher() {
	url := "/cart/voucher"

	s.Run("success: returns the server's figures", func() {
		s.mockCommands.EXPECT().ApplyVoucher(gomock.Any(), gomock.Any(), gomock.Any(), "SUMMER20").
			Return(&commands.AppliedVoucherSummary{
				Name:           "Summer Sale",
				Message:        "Voucher applied successfully",
				DiscountAmount: 31.996,
				FinalPrice:     127.984,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ApplyVoucherRequest{VoucherCode: "SUMMER20"}, "tok")

		var response resdto.AppliedVoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(127.984, response.FinalPrice, 1e-9)
		s.Equal("Voucher applied successfully", response.Message)
	})

	s.Run("error: 400 on an empty code", func() {
		s.mockCommands.EXPECT().ApplyVoucher(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(nil, errs.ErrEmptyVoucherCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ApplyVoucherRequest{}, "tok")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when the cart moved during the apply", func() {
		s.mockCommands.EXPECT().ApplyVoucher(gomock.Any(), gomock.Any(), gomock.Any(), "SUMMER20").
			Return(nil, errs.ErrCartChanged).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ApplyVoucherRequest{VoucherCode: "SUMMER20"}, "tok")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "apply the voucher again")
	})

	s.Run("error: 422 carries the upstream rejection text", func() {
		err := errs.Mark(
			infra.NewRejectedErr(slog.Default(), http.StatusBadRequest, "Cart value below minimum", "apply"),
			errs.ErrVoucherRejected,
		)
		s.mockCommands.EXPECT().ApplyVoucher(gomock.Any(), gomock.Any(), gomock.Any(), "SUMMER20").
			Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ApplyVoucherRequest{VoucherCode: "SUMMER20"}, "tok")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "Cart value below minimum")
	})
}

func (s *CartHandlerTestSuite) TestCheckout() {
	url := "/cart/checkout"

	s.Run("success: returns total and redirect target", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{Total: 127.984, Message: "Voucher used", RedirectTo: "/dashboard"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "tok")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("/dashboard", response.RedirectTo)
		s.InDelta(127.984, response.Total, 1e-9)
	})

	s.Run("error: 400 on an empty cart", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEmptyCart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 when a voucher needs a login", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 409 while another checkout is in flight", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCheckoutInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "tok")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "already in progress")
	})
}

func (s *CartHandlerTestSuite) TestRemoveVoucher() {
	s.mockCommands.EXPECT().RemoveVoucher(gomock.Any(), gomock.Any()).
		Return(nil).Times(1)
	s.mockQueries.EXPECT().View(gomock.Any()).
		Return(&queries.CartView{}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/voucher", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}
