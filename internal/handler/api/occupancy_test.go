//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/domain/principal"
	"bookcase-rental/internal/handler/api"
	resdto "bookcase-rental/internal/handler/dto/response"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/queries"
	"bookcase-rental/tests/common/builder"
	"bookcase-rental/tests/common/httptest"
	"bookcase-rental/tests/common/testutil"
	commandsmock "bookcase-rental/tests/mock/commands"
	queriesmock "bookcase-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth accepts tokens of the form "<role>:<user id>".
func fakeAuth(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	role, id, ok := strings.Cut(raw, ":")
	userID, err := uuid.Parse(id)
	if !ok || err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("user_id", userID)
	c.Set("user_role", principal.Role(role))
	c.Next()
}

func tokenFor(role principal.Role, userID uuid.UUID) string {
	return role.String() + ":" + userID.String()
}

type OccupancyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOccupancyCommands
	mockQueries  *queriesmock.MockOccupancyQueries
	handler      *api.OccupancyHandler
}

func (s *OccupancyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOccupancyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOccupancyQueries(s.mockCtrl)
	s.handler = api.NewOccupancyHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/occupancies", fakeAuth, s.handler.Occupy)
	s.router.POST("/occupancies/release", fakeAuth, s.handler.Release)
	s.router.GET("/occupancies/:id/obligations", fakeAuth, s.handler.ListObligations)
	s.router.GET("/book-cases/:id/occupancy", fakeAuth, s.handler.GetBookCaseOccupancy)
}

func (s *OccupancyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOccupancyHandlerSuite(t *testing.T) {
	suite.Run(t, new(OccupancyHandlerTestSuite))
}

type testCaseOccupy struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestOccupy
// ================================================================================

func (s *OccupancyHandlerTestSuite) TestOccupy() {
	url := "/occupancies"

	b := builder.NewOccupancyBuilder()
	reqBody := b.BuildRequestDTO()
	ownerToken := tokenFor(principal.RoleOwner, b.OwnerID)
	created := []*occupancy.Occupancy{b.BuildReconstructed()}

	bound := []testCaseOccupy{
		{name: "deposit boundary OK (1)", mutate: testutil.Field("depositAmount", 1), expectCode: http.StatusCreated},
		{name: "deposit boundary invalid (0)", mutate: testutil.Field("depositAmount", 0), expectCode: http.StatusBadRequest},
		{name: "deposit boundary invalid (-1)", mutate: testutil.Field("depositAmount", -1), expectCode: http.StatusBadRequest},
		{name: "empty book case list", mutate: testutil.Field("bookCaseIds", []string{}), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseOccupy{
		{name: "missing field: ownerId (required)", mutate: testutil.Field("ownerId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: bookCaseIds (required)", mutate: testutil.Field("bookCaseIds", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: expirationDate (required)", mutate: testutil.Field("expirationDate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: depositAmount (required)", mutate: testutil.Field("depositAmount", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseOccupy{
		{name: "expirationDate with slashes", mutate: testutil.Field("expirationDate", "2024/08/31"), expectCode: http.StatusBadRequest},
		{name: "expirationDate with time", mutate: testutil.Field("expirationDate", "2024-08-31T00:00:00Z"), expectCode: http.StatusBadRequest},
		{name: "bookCaseIds with invalid uuid", mutate: testutil.Field("bookCaseIds", []string{"nope"}), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseOccupy{bound, missing, malformed}

	s.Run("success: returns 201 Created with the new occupancies", func() {
		s.mockCommands.EXPECT().Occupy(gomock.Any(), b.BuildCommand()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, ownerToken)

		var body []resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body, 1)
		s.Equal(b.ID.String(), body[0].ID)
		s.Equal(b.BookCaseIDs[0].String(), body[0].BookCaseID)
		s.Equal("2024-08-31", body[0].ExpirationDate)
		s.Nil(body[0].SuspendedAt)
	})

	s.Run("success: staff may occupy for any owner", func() {
		s.mockCommands.EXPECT().Occupy(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tokenFor(principal.RoleStaff, uuid.New()))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Occupy(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, ownerToken)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden when owner acts for someone else", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tokenFor(principal.RoleOwner, uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "book case not found", commandsError: errs.Mark(errs.New("x"), errs.ErrBookCaseNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Book case not found"},
			{name: "already occupied", commandsError: errs.Mark(errs.New("x"), errs.ErrAlreadyOccupied), expectedStatus: http.StatusConflict, expectedMsg: "already occupied"},
			{name: "invalid period", commandsError: errs.Mark(errs.New("x"), errs.ErrInvalidOccupancyPeriod), expectedStatus: http.StatusBadRequest, expectedMsg: "Expiration date"},
			{name: "invalid deposit", commandsError: errs.Mark(errs.New("x"), errs.ErrInvalidDepositAmount), expectedStatus: http.StatusBadRequest, expectedMsg: "Deposit amount"},
			{name: "integrity failure", commandsError: errs.Mark(errs.New("x"), errs.ErrPersistenceIntegrity), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
			{name: "unexpected error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Occupy(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, ownerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRelease
// ================================================================================

func (s *OccupancyHandlerTestSuite) TestRelease() {
	url := "/occupancies/release"
	ownerID := uuid.New()
	bookCaseID := uuid.New()
	reqBody := map[string]any{"bookCaseIds": []string{bookCaseID.String()}}
	itemID := uuid.New()
	held := builder.NewOccupancyBuilder().WithOwnerID(ownerID).WithBookCaseIDs(bookCaseID).BuildView()

	s.Run("success: owner releases own book case", func() {
		s.mockQueries.EXPECT().GetActiveOccupancy(gomock.Any(), bookCaseID).Return(held, nil).Times(1)
		s.mockCommands.EXPECT().UnOccupy(gomock.Any(), []uuid.UUID{bookCaseID}).Return([]uuid.UUID{itemID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tokenFor(principal.RoleOwner, ownerID))

		var body resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{itemID.String()}, body.ItemIDs)
	})

	s.Run("success: staff skips the ownership lookup", func() {
		s.mockCommands.EXPECT().UnOccupy(gomock.Any(), []uuid.UUID{bookCaseID}).Return([]uuid.UUID{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tokenFor(principal.RoleStaff, uuid.New()))

		var body resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.ItemIDs)
	})

	s.Run("error: 403 Forbidden when the book case is held by another owner", func() {
		s.mockQueries.EXPECT().GetActiveOccupancy(gomock.Any(), bookCaseID).Return(held, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tokenFor(principal.RoleOwner, uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 409 Conflict when not occupied", func() {
		s.mockQueries.EXPECT().GetActiveOccupancy(gomock.Any(), bookCaseID).
			Return(nil, errs.Mark(errs.New("none"), errs.ErrOccupancyNotFound)).Times(1)
		s.mockCommands.EXPECT().UnOccupy(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("x"), errs.ErrNotOccupied)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tokenFor(principal.RoleOwner, ownerID))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not occupied")
	})

	s.Run("error: 409 Conflict on unsettled sales", func() {
		s.mockCommands.EXPECT().UnOccupy(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("x"), errs.ErrUnsettledSalesExist)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tokenFor(principal.RoleAdmin, uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "unsettled sales")
	})

	s.Run("error: 400 Bad Request on empty list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"bookCaseIds": []string{}}, tokenFor(principal.RoleStaff, uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestGetBookCaseOccupancy
// ================================================================================

func (s *OccupancyHandlerTestSuite) TestGetBookCaseOccupancy() {
	token := tokenFor(principal.RoleOwner, uuid.New())

	s.Run("success: occupied book case", func() {
		view := builder.NewOccupancyBuilder().BuildView()
		s.mockQueries.EXPECT().GetActiveOccupancy(gomock.Any(), view.BookCaseID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/book-cases/"+view.BookCaseID.String()+"/occupancy", nil, token)

		var body resdto.BookCaseOccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Occupied)
		s.Require().NotNil(body.Occupancy)
		s.Equal(view.ID.String(), body.Occupancy.ID)
	})

	s.Run("success: free book case", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetActiveOccupancy(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("none"), errs.ErrOccupancyNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/book-cases/"+id.String()+"/occupancy", nil, token)

		var body resdto.BookCaseOccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Occupied)
		s.Nil(body.Occupancy)
	})

	s.Run("error: 400 Bad Request on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/book-cases/not-a-uuid/occupancy", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestListObligations
// ================================================================================

func (s *OccupancyHandlerTestSuite) TestListObligations() {
	token := tokenFor(principal.RoleStaff, uuid.New())
	occupancyID := uuid.New()
	url := "/occupancies/" + occupancyID.String() + "/obligations"

	s.Run("success: returns obligations", func() {
		views := []*queries.ObligationView{
			builder.NewObligationBuilder().WithOccupancyID(occupancyID).WithDeducted(30000).BuildView(),
			builder.NewObligationBuilder().WithOccupancyID(occupancyID).WithMonth(2024, 7).BuildView(),
		}
		s.mockQueries.EXPECT().ListObligations(gomock.Any(), occupancyID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var body []resdto.ObligationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("2024-06", body[0].TargetMonth)
		s.Equal("PAID", body[0].Status)
		s.Equal("2024-07", body[1].TargetMonth)
		s.Equal(int64(30000), body[1].Remaining)
	})

	s.Run("error: 404 Not Found for unknown occupancy", func() {
		s.mockQueries.EXPECT().ListObligations(gomock.Any(), occupancyID).
			Return(nil, errs.Mark(errs.New("none"), errs.ErrOccupancyNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Occupancy not found")
	})
}
