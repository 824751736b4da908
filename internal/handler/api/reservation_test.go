//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"carreserve/internal/domain/reservation"
	"carreserve/internal/domain/user"
	"carreserve/internal/handler/api"
	resdto "carreserve/internal/handler/dto/response"
	"carreserve/internal/pkg/errs"
	"carreserve/internal/usecase"
	"carreserve/internal/usecase/queries"
	"carreserve/tests/common/builder"
	"carreserve/tests/common/httptest"
	"carreserve/tests/common/testutil"
	usecasemock "carreserve/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockReservationUseCase
	handler     *api.ReservationHandler
	userID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUseCase, time.UTC)
	s.userID = uuid.New()

	// stand-in for the auth middleware
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleMember)
			h(c)
		}
	}

	s.router.POST("/reservations", authed(s.handler.CreateReservation))
	s.router.GET("/reservations", authed(s.handler.GetUserReservations))
	s.router.GET("/reservations/:id", authed(s.handler.GetReservation))
	s.router.POST("/reservations/:id/cancel", authed(s.handler.CancelReservation))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) requestBody() map[string]any {
	return map[string]any{
		"carId":     uuid.New().String(),
		"date":      "2025-06-15",
		"startTime": "10:00",
		"endTime":   "12:00",
		"purpose":   "grocery run",
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	s.Run("success: returns 201 Created", func() {
		view, err := builder.NewReservationBuilder().BuildView()
		s.Require().NoError(err)

		s.mockUseCase.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody(), "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing carId", mutate: testutil.Field("carId", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing startTime", mutate: testutil.Field("startTime", nil)},
			{name: "missing endTime", mutate: testutil.Field("endTime", nil)},
			{name: "missing purpose", mutate: testutil.Field("purpose", nil)},
			{name: "bad date format", mutate: testutil.Field("date", "15/06/2025")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), s.requestBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "car not found", err: usecase.ErrCarNotFound, expectCode: http.StatusNotFound},
			{name: "invalid car id", err: usecase.ErrInvalidCarID, expectCode: http.StatusBadRequest},
			{name: "invalid time slot", err: usecase.ErrInvalidTimeSlot, expectCode: http.StatusBadRequest},
			{name: "invalid time slot under a cause", err: errs.Mark(reservation.ErrEndNotAfterStart, usecase.ErrInvalidTimeSlot), expectCode: http.StatusBadRequest},
			{name: "slot conflict", err: usecase.ErrReservationConflict, expectCode: http.StatusConflict},
			{name: "unexpected failure", err: usecase.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: returns 200 OK", func() {
		view, err := builder.NewReservationBuilder().BuildView()
		s.Require().NoError(err)

		s.mockUseCase.EXPECT().
			GetReservation(gomock.Any(), view.ID, s.userID, user.RoleMember).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			GetReservation(gomock.Any(), id, s.userID, user.RoleMember).
			Return(nil, usecase.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 403 when not the owner", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			GetReservation(gomock.Any(), id, s.userID, user.RoleMember).
			Return(nil, usecase.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("success: returns 200 with cancelled view", func() {
		view, err := builder.NewReservationBuilder().WithStatus("cancelled").BuildView()
		s.Require().NoError(err)

		s.mockUseCase.EXPECT().
			CancelReservation(gomock.Any(), view.ID, s.userID).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+view.ID.String()+"/cancel", nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "not found", err: usecase.ErrReservationNotFound, expectCode: http.StatusNotFound},
			{name: "not the owner", err: usecase.ErrNotReservationOwner, expectCode: http.StatusForbidden},
			{name: "no longer cancellable", err: usecase.ErrCannotCancel, expectCode: http.StatusConflict},
			{name: "already cancelled under a cause", err: errs.Mark(reservation.ErrAlreadyCancelled, usecase.ErrCannotCancel), expectCode: http.StatusConflict},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				id := uuid.New()
				s.mockUseCase.EXPECT().
					CancelReservation(gomock.Any(), id, s.userID).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	s.Run("success: returns the member's reservations", func() {
		first, err := builder.NewReservationBuilder().BuildView()
		s.Require().NoError(err)
		second, err := builder.NewReservationBuilder().WithStatus("approved").BuildView()
		s.Require().NoError(err)

		s.mockUseCase.EXPECT().
			GetUserReservations(gomock.Any(), s.userID).
			Return([]*queries.ReservationView{first, second}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}
