//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"carreserve/internal/handler/api"
	resdto "carreserve/internal/handler/dto/response"
	"carreserve/internal/pkg/config"
	"carreserve/internal/pkg/cookie"
	"carreserve/internal/pkg/jwt"
	"carreserve/internal/usecase"
	"carreserve/tests/common/builder"
	"carreserve/tests/common/httptest"
	"carreserve/tests/common/testutil"
	usecasemock "carreserve/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	jwtService := jwt.NewService("unit-test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockUseCase, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stand-in for the auth middleware
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) loginBody() map[string]any {
	return map[string]any{
		"email":    "member@example.com",
		"password": "password123",
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	s.Run("success: returns 200 with token and cookie", func() {
		returnUser := builder.NewUserBuilder().BuildView()
		expectedToken := "test-jwt-token"

		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(expectedToken, returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.loginBody(), "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c, "login must set the access token cookie")
		s.Equal(expectedToken, c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), s.loginBody(), tc.mutate)
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
			{name: "wrong password", err: usecase.ErrInvalidCredentials, expectCode: http.StatusUnauthorized},
			{name: "unknown user", err: usecase.ErrUserNotFound, expectCode: http.StatusUnauthorized},
			{name: "inactive account", err: usecase.ErrUserInactive, expectCode: http.StatusForbidden},
			{name: "unexpected failure", err: usecase.ErrAuthenticationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return("", nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.loginBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value, "logout must clear the cookie")
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current user", func() {
		returnUser := builder.NewUserBuilder().BuildView()

		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without user context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 when user vanished", func() {
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
