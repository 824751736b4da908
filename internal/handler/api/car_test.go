//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"carreserve/internal/domain/car"
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockCarUseCase
	handler     *api.CarHandler
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockCarUseCase(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockUseCase)

	s.router.GET("/cars", s.handler.ListCars)
	s.router.POST("/cars", s.handler.CreateCar)
	s.router.GET("/dashboard/stats", s.handler.GetDashboardStats)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

func (s *CarHandlerTestSuite) requestBody() map[string]any {
	return map[string]any{
		"make":        "Subaru",
		"model":       "Outback",
		"year":        2023,
		"plateNumber": "FAM-0003",
	}
}

func (s *CarHandlerTestSuite) TestListCars() {
	s.Run("success: returns the fleet", func() {
		views := []*queries.CarView{
			builder.NewCarBuilder().BuildView(),
			builder.NewCarBuilder().With(func(b *builder.CarBuilder) {
				b.Make = "Honda"
				b.Model = "Odyssey"
				b.PlateNumber = "FAM-0002"
			}).BuildView(),
		}

		s.mockUseCase.EXPECT().ListCars(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, "")

		var response []resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Toyota", response[0].Make)
	})

	s.Run("error: 500 on usecase failure", func() {
		s.mockUseCase.EXPECT().ListCars(gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *CarHandlerTestSuite) TestCreateCar() {
	url := "/cars"

	s.Run("success: returns 201 Created", func() {
		view := builder.NewCarBuilder().With(func(b *builder.CarBuilder) {
			b.Make = "Subaru"
			b.Model = "Outback"
			b.PlateNumber = "FAM-0003"
		}).BuildView()

		s.mockUseCase.EXPECT().
			CreateCar(gomock.Any(), usecase.CreateCarInput{
				Make:        "Subaru",
				Model:       "Outback",
				Year:        2023,
				PlateNumber: "FAM-0003",
			}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody(), "")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("FAM-0003", response.PlateNumber)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing make", mutate: testutil.Field("make", nil)},
			{name: "missing model", mutate: testutil.Field("model", nil)},
			{name: "missing year", mutate: testutil.Field("year", nil)},
			{name: "missing plateNumber", mutate: testutil.Field("plateNumber", nil)},
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
			{name: "invalid car data", err: errs.Mark(car.ErrInvalidYear, usecase.ErrInvalidCarData), expectCode: http.StatusBadRequest},
			{name: "duplicate plate", err: usecase.ErrDuplicatePlate, expectCode: http.StatusConflict},
			{name: "unexpected failure", err: usecase.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().
					CreateCar(gomock.Any(), gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.requestBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *CarHandlerTestSuite) TestGetDashboardStats() {
	s.Run("success: returns fleet and active counts", func() {
		s.mockUseCase.EXPECT().
			GetDashboardStats(gomock.Any()).
			Return(&queries.DashboardStats{CarCount: 2, ActiveReservations: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/stats", nil, "")

		var response queries.DashboardStats
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.CarCount)
		s.Equal(int64(3), response.ActiveReservations)
	})
}
