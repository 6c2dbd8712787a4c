package service

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"hostelgate/internal/auth/models"
	"hostelgate/internal/auth/store/session"
	jwttoken "hostelgate/internal/jwt_token"
	"hostelgate/internal/platform/logger"
	"hostelgate/internal/platform/metrics"
	dErrors "hostelgate/pkg/domain-errors"
	"hostelgate/pkg/platform/audit"
	auditpublisher "hostelgate/pkg/platform/audit/publisher"
	auditstore "hostelgate/pkg/platform/audit/store/memory"
)

type AuthServiceSuite struct {
	suite.Suite
	ctx        context.Context
	clock      *testclock.Clock
	sessions   *session.InMemorySessionStore
	auditStore *auditstore.InMemoryStore
	metrics    *metrics.Metrics
	service    *Service
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = testclock.NewClock(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))

	admin, err := HashCredential("admin", "adminpassword", models.RoleAdmin, bcrypt.MinCost)
	s.Require().NoError(err)
	guard, err := HashCredential("guard", "guardpassword", models.RoleGuard, bcrypt.MinCost)
	s.Require().NoError(err)

	s.sessions = session.New()
	s.auditStore = auditstore.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	tokens := jwttoken.NewJWTService("test-key", "hostelgate", "hostelgate-operators", jwttoken.WithClock(s.clock))
	s.service = New([]models.Credential{admin, guard}, s.sessions, tokens,
		WithClock(s.clock),
		WithSessionTTL(time.Hour),
		WithLogger(logger.Discard()),
		WithMetrics(s.metrics),
		WithAuditPublisher(auditpublisher.New(s.auditStore)),
	)
}

func (s *AuthServiceSuite) TestLoginMatrix() {
	cases := []struct {
		name     string
		username string
		password string
		wantRole models.Role
		wantErr  bool
	}{
		{name: "admin", username: "admin", password: "adminpassword", wantRole: models.RoleAdmin},
		{name: "username is case-insensitive", username: "Admin", password: "adminpassword", wantRole: models.RoleAdmin},
		{name: "inputs are trimmed", username: "  guard ", password: " guardpassword\t", wantRole: models.RoleGuard},
		{name: "guard", username: "guard", password: "guardpassword", wantRole: models.RoleGuard},
		{name: "wrong password", username: "admin", password: "WrongPass", wantErr: true},
		{name: "password is case-sensitive", username: "admin", password: "ADMINPASSWORD", wantErr: true},
		{name: "unknown user", username: "warden", password: "adminpassword", wantErr: true},
		{name: "swapped passwords", username: "guard", password: "adminpassword", wantErr: true},
		{name: "empty", username: "", password: "", wantErr: true},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Require().NoError(s.service.Logout(s.ctx))

			sess, err := s.service.Login(s.ctx, tc.username, tc.password)
			if tc.wantErr {
				s.Require().Error(err)
				s.True(dErrors.HasCode(err, dErrors.CodeInvalidCredentials))
				_, ok := s.service.CurrentSession(s.ctx)
				s.False(ok)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantRole, sess.Role)
			s.NotEmpty(sess.ID)
			s.NotEmpty(sess.Token)

			current, ok := s.service.CurrentSession(s.ctx)
			s.Require().True(ok)
			s.Equal(sess.ID, current.ID)
		})
	}
}

func (s *AuthServiceSuite) TestLogin_StoresCanonicalUsername() {
	sess, err := s.service.Login(s.ctx, "ADMIN", "adminpassword")
	s.Require().NoError(err)
	s.Equal("admin", sess.Username)
}

func (s *AuthServiceSuite) TestLogin_FailureLeavesPriorSession() {
	prior, err := s.service.Login(s.ctx, "guard", "guardpassword")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "admin", "nope")
	s.Require().Error(err)

	current, ok := s.service.CurrentSession(s.ctx)
	s.Require().True(ok)
	s.Equal(prior.ID, current.ID)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Logins.WithLabelValues("failure", "")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Logins.WithLabelValues("success", "GUARD")))
}

func (s *AuthServiceSuite) TestLogout() {
	s.Run("clears the session", func() {
		_, err := s.service.Login(s.ctx, "admin", "adminpassword")
		s.Require().NoError(err)

		s.Require().NoError(s.service.Logout(s.ctx))
		_, ok := s.service.CurrentSession(s.ctx)
		s.False(ok)
	})

	s.Run("is idempotent", func() {
		s.Require().NoError(s.service.Logout(s.ctx))
		s.Require().NoError(s.service.Logout(s.ctx))
	})
}

func (s *AuthServiceSuite) TestAuthenticate() {
	s.Run("accepts the token of the active session", func() {
		sess, err := s.service.Login(s.ctx, "guard", "guardpassword")
		s.Require().NoError(err)

		got, err := s.service.Authenticate(s.ctx, sess.Token)
		s.Require().NoError(err)
		s.Equal(sess.ID, got.ID)
		s.Equal(models.RoleGuard, got.Role)
	})

	s.Run("rejects a token after logout", func() {
		sess, err := s.service.Login(s.ctx, "guard", "guardpassword")
		s.Require().NoError(err)
		s.Require().NoError(s.service.Logout(s.ctx))

		_, err = s.service.Authenticate(s.ctx, sess.Token)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects a token from a replaced session", func() {
		old, err := s.service.Login(s.ctx, "guard", "guardpassword")
		s.Require().NoError(err)
		_, err = s.service.Login(s.ctx, "admin", "adminpassword")
		s.Require().NoError(err)

		_, err = s.service.Authenticate(s.ctx, old.Token)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects garbage", func() {
		_, err := s.service.Authenticate(s.ctx, "not-a-token")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *AuthServiceSuite) TestSessionExpiry() {
	sess, err := s.service.Login(s.ctx, "admin", "adminpassword")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	_, ok := s.service.CurrentSession(s.ctx)
	s.False(ok)
	_, err = s.service.Authenticate(s.ctx, sess.Token)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *AuthServiceSuite) TestAuditTrail() {
	_, _ = s.service.Login(s.ctx, "admin", "bad")
	_, err := s.service.Login(s.ctx, "admin", "adminpassword")
	s.Require().NoError(err)
	s.Require().NoError(s.service.Logout(s.ctx))

	events, err := s.auditStore.ListBySubject(s.ctx, "admin")
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(string(audit.EventLoginFailed), events[0].Action)
	s.Equal(string(audit.EventLoginSucceeded), events[1].Action)
	s.Equal(string(audit.EventLoggedOut), events[2].Action)
	s.Equal(audit.CategorySecurity, events[2].Category)
}

func (s *AuthServiceSuite) TestLogAudit_LeavesCallerAttrsUntouched() {
	attrs := make([]any, 2, 8)
	attrs[0], attrs[1] = "reason_code", "bad_password"

	s.service.logAudit(s.ctx, audit.EventLoginFailed, "admin", "invalid credentials", attrs...)

	spare := attrs[:cap(attrs)]
	for i := 2; i < len(spare); i++ {
		s.Nil(spare[i], "slot %d of caller backing array written", i)
	}
}

func TestHashCredential(t *testing.T) {
	t.Run("normalizes username", func(t *testing.T) {
		c, err := HashCredential("  Guard ", "pw", models.RoleGuard, bcrypt.MinCost)
		if err != nil {
			t.Fatal(err)
		}
		if c.Username != "guard" {
			t.Fatalf("expected guard, got %q", c.Username)
		}
		if bcrypt.CompareHashAndPassword(c.PasswordHash, []byte("pw")) != nil {
			t.Fatal("hash does not match password")
		}
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := HashCredential("x", "y", models.Role("JANITOR"), bcrypt.MinCost)
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
