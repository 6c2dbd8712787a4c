package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hostelgate/internal/auth/handler/mocks"
	"hostelgate/internal/auth/models"
	"hostelgate/internal/platform/logger"
	dErrors "hostelgate/pkg/domain-errors"
	"hostelgate/pkg/testutil"
)

type AuthHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
	session *models.Session
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	h := New(s.service, logger.Discard())
	s.router = chi.NewRouter()
	h.RegisterPublic(s.router)
	h.Register(s.router)

	s.session = &models.Session{
		ID:        "sess-1",
		Username:  "admin",
		Role:      models.RoleAdmin,
		CreatedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC),
		Token:     "signed-token",
	}
}

func (s *AuthHandlerSuite) TestLogin() {
	s.Run("valid credentials return the session and token", func() {
		s.service.EXPECT().Login(gomock.Any(), "admin", "admin123").Return(s.session, nil)

		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login",
			LoginRequest{Username: "admin", Password: "admin123"}))

		s.Equal(http.StatusOK, rr.Code)
		body := testutil.UnmarshalResponse[SessionResponse](s.T(), rr)
		s.Equal("sess-1", body.SessionID)
		s.Equal("ADMIN", body.Role)
		s.Equal("signed-token", body.Token)
	})

	s.Run("invalid credentials return 401", func() {
		s.service.EXPECT().Login(gomock.Any(), "admin", "wrong").
			Return(nil, dErrors.New(dErrors.CodeInvalidCredentials, "invalid username or password"))

		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login",
			LoginRequest{Username: "admin", Password: "wrong"}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeInvalidCredentials))
	})

	s.Run("blank password never reaches the service", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login",
			LoginRequest{Username: "admin", Password: "   "}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeMissingField))
	})

	s.Run("unknown fields are rejected", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/auth/login",
			map[string]string{"username": "admin", "password": "x", "role": "ADMIN"}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func (s *AuthHandlerSuite) TestLogout() {
	s.Run("returns 204", func() {
		s.service.EXPECT().Logout(gomock.Any()).Return(nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/auth/logout"))

		s.Equal(http.StatusNoContent, rr.Code)
	})

	s.Run("store failure hides the description", func() {
		s.service.EXPECT().Logout(gomock.Any()).
			Return(dErrors.Wrap(errors.New("boom"), dErrors.CodeInternal, "failed to clear session"))

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/auth/logout"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, string(dErrors.CodeInternal))
		s.NotContains(rr.Body.String(), "failed to clear session")
	})
}

func (s *AuthHandlerSuite) TestSession() {
	s.Run("active session omits the token", func() {
		s.service.EXPECT().CurrentSession(gomock.Any()).Return(s.session, true)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/auth/session"))

		s.Equal(http.StatusOK, rr.Code)
		body := testutil.UnmarshalResponse[SessionResponse](s.T(), rr)
		s.Equal("admin", body.Username)
		s.Empty(body.Token)
	})

	s.Run("no session returns 401", func() {
		s.service.EXPECT().CurrentSession(gomock.Any()).Return(nil, false)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/auth/session"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeUnauthorized))
	})
}
