//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/handler/api"
	resdto "bookcase-rental/internal/handler/dto/response"
	"bookcase-rental/internal/usecase/commands"
	"bookcase-rental/tests/common/httptest"
	commandsmock "bookcase-rental/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReconciliationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReconciliationCommands
}

func (s *ReconciliationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReconciliationCommands(s.mockCtrl)
	handler := api.NewReconciliationHandler(s.mockCommands)

	s.router.POST("/admin/reconciliations", handler.Run)
}

func (s *ReconciliationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReconciliationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationHandlerTestSuite))
}

func (s *ReconciliationHandlerTestSuite) TestRun() {
	url := "/admin/reconciliations"

	s.Run("success: returns the run report", func() {
		month, _ := settlement.ParseMonth("2024-07")
		report := &commands.ReconciliationReport{
			Month:           "2024-07",
			OwnersProcessed: 3,
			OwnersFailed:    1,
			Suspensions:     1,
			Offsets:         4,
			OffsetTotal:     90000,
			StartedAt:       time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC),
			Duration:        1500 * time.Millisecond,
		}
		s.mockCommands.EXPECT().ProcessMonthlyOverdue(gomock.Any(), month).Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"month": "2024-07"}, "")

		var body resdto.ReconciliationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2024-07", body.Month)
		s.Equal(3, body.OwnersProcessed)
		s.Equal(1, body.OwnersFailed)
		s.Equal(int64(90000), body.OffsetTotal)
		s.Equal(int64(1500), body.DurationMillis)
	})

	s.Run("error: 400 Bad Request on malformed month", func() {
		for _, body := range []map[string]any{{}, {"month": ""}, {"month": "2024-13"}, {"month": "July"}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 500 Internal Server Error when the run cannot start", func() {
		s.mockCommands.EXPECT().ProcessMonthlyOverdue(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool closed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"month": "2024-07"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
