// Package session is the authentication boundary of the SDK. It only answers
// one question for the gateway: is there a bearer token right now. Login,
// logout and refresh live with the hosted auth backend, not here.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenSource reports the current bearer token, if any. The second return
// value is false when no usable token exists, in which case the gateway must
// omit the Authorization header entirely.
type TokenSource interface {
	AccessToken() (string, bool)
}

// StaticTokenSource hands out a fixed token. An empty token reads as "no
// session".
type StaticTokenSource struct {
	token string
}

func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) AccessToken() (string, bool) {
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

// Ensure both sources implement the TokenSource interface
var (
	_ TokenSource = &StaticTokenSource{}
	_ TokenSource = &JWTSource{}
)

// JWTSource holds a JWT issued by the auth backend and stops handing it out
// once its exp claim has passed, so the gateway never sends a dead bearer.
// The signature is not verified here; only the server can do that.
type JWTSource struct {
	mu    sync.RWMutex
	token string
	exp   *time.Time
}

func NewJWTSource(token string) (*JWTSource, error) {
	s := &JWTSource{}
	if err := s.SetToken(token); err != nil {
		return nil, err
	}
	return s, nil
}

// SetToken replaces the held token, e.g. after the auth backend refreshed the
// session. An empty token clears the session.
func (s *JWTSource) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		s.token = ""
		s.exp = nil
		return nil
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return err
	}

	s.token = token
	s.exp = nil
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		s.exp = &exp
	}
	return nil
}

func (s *JWTSource) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", false
	}
	if s.exp != nil && !time.Now().Before(*s.exp) {
		return "", false
	}
	return s.token, true
}
