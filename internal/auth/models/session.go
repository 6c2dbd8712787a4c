package models

import (
	"strings"
	"time"
)

// Role is the operator role a session is bound to.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleGuard Role = "GUARD"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleGuard
}

// ParseRole accepts a role name in any case.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	return r, r.IsValid()
}

// Session is the single active login for the process.
type Session struct {
	ID        string    `json:"session_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token,omitempty"`
}

// IsExpired reports whether the session has passed its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Credential is one configured username bound to a role. Only the bcrypt
// hash of the password is kept.
type Credential struct {
	Username     string
	PasswordHash []byte
	Role         Role
}
