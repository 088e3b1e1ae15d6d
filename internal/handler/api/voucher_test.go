//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"offerbee-storefront/internal/domain/voucher"
	"offerbee-storefront/internal/handler/api"
	resdto "offerbee-storefront/internal/handler/dto/response"
	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/queries"
	"offerbee-storefront/tests/common/builder"
	"offerbee-storefront/tests/common/httptest"
	"offerbee-storefront/tests/common/testutil"
	commandsmock "offerbee-storefront/tests/mock/commands"
	queriesmock "offerbee-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVoucherCommands
	mockQueries  *queriesmock.MockVoucherQueries
	handler      *api.VoucherHandler
	now          time.Time
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.handler = api.NewVoucherHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/vouchers", s.handler.ListMine)
	s.router.POST("/vouchers", s.handler.Create)
	s.router.GET("/vouchers/generate-code", s.handler.GenerateCode)
	s.router.DELETE("/vouchers/:id", s.handler.Delete)
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

func (s *VoucherHandlerTestSuite) TestListMine() {
	s.Run("success: wraps the dashboard rows", func() {
		rows := []queries.VoucherRow{{ID: "abc", Name: "Summer Sale", Status: voucher.StatusActive}}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any()).
			Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers", nil, "tok")

		var response resdto.VoucherListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Vouchers, 1)
		s.Equal("Summer Sale", response.Vouchers[0].Name)
		s.Equal("Active", response.Vouchers[0].Status.Label)
	})

	s.Run("error: upstream rejection surfaces the server message", func() {
		err := errs.Mark(
			infra.NewRejectedErr(slog.Default(), http.StatusUnauthorized, "Token expired", "list"),
			errs.ErrUpstreamRejected,
		)
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any()).
			Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers", nil, "tok")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Token expired")
	})

	s.Run("error: 502 when upstream is down", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUpstreamUnreachable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers", nil, "tok")
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}

func (s *VoucherHandlerTestSuite) TestCreate() {
	url := "/vouchers"
	reqBody := builder.NewVoucherBuilder(s.now).BuildCreateDTO()

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "tok")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 422 on a malformed code before the command runs", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("voucherCode", "no spaces!"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "tok")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.Mark(voucher.ErrInvalidValidityWindow, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "tok")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 on missing required fields", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "tok")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *VoucherHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), "abc123").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vouchers/abc123", nil, "tok")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for a missing voucher", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), "missing").
			Return(errs.ErrVoucherNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vouchers/missing", nil, "tok")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *VoucherHandlerTestSuite) TestGenerateCode() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers/generate-code", nil, "tok")

	var response resdto.GeneratedCodeResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Code, 8)
	s.NoError(voucher.Code(response.Code).Validate())
}
