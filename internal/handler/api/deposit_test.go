//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bookcase-rental/internal/domain/principal"
	"bookcase-rental/internal/handler/api"
	resdto "bookcase-rental/internal/handler/dto/response"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/queries"
	"bookcase-rental/tests/common/builder"
	"bookcase-rental/tests/common/httptest"
	queriesmock "bookcase-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DepositHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDepositQueries
}

func (s *DepositHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDepositQueries(s.mockCtrl)
	handler := api.NewDepositHandler(s.mockQueries)

	s.router.GET("/owners/:id/deposit", fakeAuth, handler.GetByOwner)
}

func (s *DepositHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDepositHandlerSuite(t *testing.T) {
	suite.Run(t, new(DepositHandlerTestSuite))
}

func (s *DepositHandlerTestSuite) TestGetByOwner() {
	ownerID := uuid.New()
	url := "/owners/" + ownerID.String() + "/deposit"
	offsetAt := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)

	s.Run("success: owner reads own deposit", func() {
		view := builder.NewDepositBuilder().WithOwnerID(ownerID).WithBalance(50000, 20000).BuildView(
			&queries.DepositOffsetView{ID: uuid.New(), ObligationID: uuid.New(), Amount: 30000, CreatedAt: offsetAt},
		)
		s.mockQueries.EXPECT().GetByOwner(gomock.Any(), ownerID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, tokenFor(principal.RoleOwner, ownerID))

		var body resdto.DepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(50000), body.Amount)
		s.Equal(int64(20000), body.Remaining)
		s.Equal("HELD", body.Status)
		s.Require().Len(body.Offsets, 1)
		s.Equal(offsetAt.Unix(), body.Offsets[0].CreatedAt)
	})

	s.Run("success: admin reads any deposit", func() {
		view := builder.NewDepositBuilder().WithOwnerID(ownerID).AsDepleted().BuildView()
		s.mockQueries.EXPECT().GetByOwner(gomock.Any(), ownerID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, tokenFor(principal.RoleAdmin, uuid.New()))

		var body resdto.DepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("DEPLETED", body.Status)
		s.NotNil(body.Offsets)
	})

	s.Run("error: 403 Forbidden for another owner", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, tokenFor(principal.RoleOwner, uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 404 Not Found without deposit", func() {
		s.mockQueries.EXPECT().GetByOwner(gomock.Any(), ownerID).
			Return(nil, errs.Mark(errs.New("none"), errs.ErrDepositNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, tokenFor(principal.RoleOwner, ownerID))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deposit not found")
	})

	s.Run("error: 400 Bad Request on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owners/xyz/deposit", nil, tokenFor(principal.RoleAdmin, uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
