package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinic-cms/pkg/jwt"
)

// Authenticator turns the shared admin password into a session credential
// and checks credentials presented on later requests. Handlers and
// middleware only see this port.
type Authenticator interface {
	Login(password string) (string, error)
	Verify(token string) bool
}

// =====================================================
// PASSWORD
// =====================================================

// PasswordMatcher compares a submitted password against the configured one.
// A configured value that looks like a bcrypt hash is compared as a hash.
type PasswordMatcher struct {
	expected string
	hashed   bool
}

func NewPasswordMatcher(expected string) PasswordMatcher {
	return PasswordMatcher{expected: expected, hashed: isBcryptHash(expected)}
}

func (p PasswordMatcher) Match(password string) bool {
	if p.expected == "" || password == "" {
		return false
	}
	if p.hashed {
		return bcrypt.CompareHashAndPassword([]byte(p.expected), []byte(password)) == nil
	}
	return constantTimeEqual(p.expected, password)
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// =====================================================
// STATIC TOKEN
// =====================================================

// StaticAuthenticator hands out one fixed token to anyone who knows the password.
type StaticAuthenticator struct {
	password PasswordMatcher
	token    string
}

func NewStaticAuthenticator(password, token string) *StaticAuthenticator {
	return &StaticAuthenticator{password: NewPasswordMatcher(password), token: token}
}

func (s *StaticAuthenticator) Login(password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}
	if !s.password.Match(password) {
		return "", ErrInvalidCredentials
	}
	return s.token, nil
}

func (s *StaticAuthenticator) Verify(token string) bool {
	return token != "" && s.token != "" && constantTimeEqual(s.token, token)
}

// =====================================================
// JWT
// =====================================================

// JWTAuthenticator issues signed, expiring session tokens.
type JWTAuthenticator struct {
	password PasswordMatcher
	manager  *jwt.Manager
}

func NewJWTAuthenticator(password string, manager *jwt.Manager) *JWTAuthenticator {
	return &JWTAuthenticator{password: NewPasswordMatcher(password), manager: manager}
}

func (j *JWTAuthenticator) Login(password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}
	if !j.password.Match(password) {
		return "", ErrInvalidCredentials
	}
	return j.manager.GenerateSessionToken()
}

func (j *JWTAuthenticator) Verify(token string) bool {
	if token == "" {
		return false
	}
	_, err := j.manager.ValidateSessionToken(token)
	return err == nil
}

// New builds the authenticator for mode ("static" or "jwt").
func New(mode, password, token string, ttl time.Duration) (Authenticator, error) {
	switch mode {
	case "", "static":
		return NewStaticAuthenticator(password, token), nil
	case "jwt":
		return NewJWTAuthenticator(password, jwt.NewManager(token, ttl)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
}
