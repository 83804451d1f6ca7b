// Package service checks dashboard credentials and issues session tokens.
package service

import (
	"context"
	"crypto/subtle"
	"time"

	"lead_scoring_backend/platform/apperr"
	"lead_scoring_backend/platform/config"
	"lead_scoring_backend/platform/httpkit"
	"lead_scoring_backend/platform/logger"

	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "Invalid credentials"

// Service authenticates the single dashboard account.
type Service struct {
	username     string
	passwordHash []byte
	secret       string
	ttl          time.Duration
	log          *logger.Logger
	now          func() time.Time
}

// New hashes the configured dashboard password once so that only the hash
// is held in memory.
func New(cfg config.DashboardConfig, log *logger.Logger) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.GetDashboardPassword()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		username:     cfg.GetDashboardUsername(),
		passwordHash: hash,
		secret:       cfg.GetJWTSecret(),
		ttl:          cfg.GetAuthTokenTTL(),
		log:          log,
		now:          time.Now,
	}, nil
}

// Login verifies the credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	log := s.log.WithContext(ctx)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		log.AuthEvent("login", username, false, "invalid credentials")
		return "", apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := httpkit.SignSessionToken(s.username, s.secret, s.ttl, s.now())
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "failed to issue session", err).WithOp("auth.Login")
	}

	log.AuthEvent("login", username, true, "")
	return token, nil
}

// TokenTTL is the lifetime of issued sessions.
func (s *Service) TokenTTL() time.Duration {
	return s.ttl
}
