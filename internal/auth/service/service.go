package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"hostelgate/internal/auth/models"
	jwttoken "hostelgate/internal/jwt_token"
	"hostelgate/internal/platform/metrics"
	dErrors "hostelgate/pkg/domain-errors"
	"hostelgate/pkg/platform/audit"
	"hostelgate/pkg/platform/sentinel"
	"hostelgate/pkg/requestcontext"
)

// SessionStore holds the single active session.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Current(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// TokenService signs and validates session tokens.
type TokenService interface {
	GenerateToken(sessionID, username, role string, expiresAt time.Time) (string, error)
	ValidateToken(token string) (*jwttoken.Claims, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service checks operator credentials and owns the process-wide session
// slot. There are no retries, lockouts or rate limits.
type Service struct {
	credentials    []models.Credential
	sessions       SessionStore
	tokens         TokenService
	sessionTTL     time.Duration
	clock          clock.Clock
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.sessionTTL = ttl
	}
}

// HashCredential builds a Credential for username/password bound to role.
// The username is stored trimmed and lower-cased; the password is hashed as
// given.
func HashCredential(username, password string, role models.Role, cost int) (models.Credential, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return models.Credential{}, dErrors.New(dErrors.CodeValidation, "username and password are required")
	}
	if !role.IsValid() {
		return models.Credential{}, dErrors.New(dErrors.CodeValidation, "invalid role: "+string(role))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return models.Credential{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	return models.Credential{Username: username, PasswordHash: hash, Role: role}, nil
}

func New(credentials []models.Credential, sessions SessionStore, tokens TokenService, opts ...Option) *Service {
	s := &Service{
		credentials: credentials,
		sessions:    sessions,
		tokens:      tokens,
		sessionTTL:  12 * time.Hour,
		clock:       clock.WallClock,
		logger:      slog.Default(),
		tracer:      otel.Tracer("hostelgate/internal/auth/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login trims both inputs, matches the username case-insensitively and the
// password exactly. On success the new session replaces the slot. On failure
// the slot is left as it was.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Session, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Login")
	defer span.End()

	username = strings.ToLower(strings.TrimSpace(username))
	password = strings.TrimSpace(password)

	cred, ok := s.match(username, password)
	if !ok {
		s.authFailure(ctx, username)
		return nil, dErrors.New(dErrors.CodeInvalidCredentials, "invalid username or password")
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:        uuid.NewString(),
		Username:  cred.Username,
		Role:      cred.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	token, err := s.tokens.GenerateToken(session.ID, session.Username, string(session.Role), session.ExpiresAt)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue session token")
	}
	session.Token = token

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}

	if s.metrics != nil {
		s.metrics.IncrementLogin(true, string(session.Role))
	}
	s.logAudit(ctx, audit.EventLoginSucceeded, session.Username, "",
		"session_id", session.ID,
		"role", string(session.Role),
	)
	return session, nil
}

func (s *Service) match(username, password string) (models.Credential, bool) {
	if username == "" || password == "" {
		return models.Credential{}, false
	}
	for _, c := range s.credentials {
		if c.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) != nil {
			return models.Credential{}, false
		}
		return c, true
	}
	return models.Credential{}, false
}

// Logout clears the slot. Calling it with no active session is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	current, err := s.sessions.Current(ctx)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	if err := s.sessions.Clear(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear session")
	}
	if current != nil {
		s.logAudit(ctx, audit.EventLoggedOut, current.Username, "",
			"session_id", current.ID,
		)
	}
	return nil
}

// CurrentSession returns the active session, if any. An expired session is
// cleared and reported as absent.
func (s *Service) CurrentSession(ctx context.Context) (*models.Session, bool) {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to load session", "error", err)
		}
		return nil, false
	}
	if current.IsExpired(s.clock.Now()) {
		if err := s.sessions.Clear(ctx); err != nil {
			s.logger.ErrorContext(ctx, "failed to clear expired session", "error", err)
		}
		return nil, false
	}
	return current, true
}

// Authenticate resolves a bearer token to the active session. Tokens issued
// for a session that has since been replaced or logged out are rejected.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	current, ok := s.CurrentSession(ctx)
	if !ok || current.ID != claims.SessionID {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session is no longer active")
	}
	return current, nil
}

func (s *Service) authFailure(ctx context.Context, username string) {
	if s.metrics != nil {
		s.metrics.IncrementLogin(false, "")
	}
	s.logAudit(ctx, audit.EventLoginFailed, username, "invalid_credentials")
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, subject, reason string, attrs ...any) {
	requestID := requestcontext.RequestID(ctx)
	args := slices.Concat(attrs, []any{"event", string(event), "log_type", "audit", "username", subject})
	if requestID != "" {
		args = append(args, "request_id", requestID)
	}
	if event == audit.EventLoginFailed {
		s.logger.WarnContext(ctx, string(event), args...)
	} else {
		s.logger.InfoContext(ctx, string(event), args...)
	}

	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Category:  event.Category(),
		Actor:     subject,
		Subject:   subject,
		Action:    string(event),
		Reason:    reason,
		RequestID: requestID,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"event", string(event),
			"error", err,
		)
	}
}
