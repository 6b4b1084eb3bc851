// Package session owns the lifetime of the API token: established by
// password or Google login, persisted locally, torn down on any 401.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"devhub/internal/api"
	"devhub/internal/domain"
)

// TokenKey is the local-state key holding the bearer token.
const TokenKey = "token"

// ErrSessionExpired is surfaced after a 401 forced the local session out.
var ErrSessionExpired = errors.New("session expired, please log in again")

type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Authenticator is the slice of the API client the session layer needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*domain.Session, error)
	SetToken(token string)
	ClearToken()
}

type Manager struct {
	auth    Authenticator
	storage Storage
	logger  *slog.Logger
}

func NewManager(auth Authenticator, storage Storage, logger *slog.Logger) *Manager {
	return &Manager{
		auth:    auth,
		storage: storage,
		logger:  logger.With("component", "session"),
	}
}

// Restore installs a previously persisted token on the API client, if one
// exists. Returns whether a session was restored.
func (m *Manager) Restore(ctx context.Context) (bool, error) {
	raw, ok, err := m.storage.Get(ctx, TokenKey)
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}

	m.auth.SetToken(string(raw))
	return true, nil
}

func (m *Manager) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	session, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return session, m.establish(ctx, session)
}

func (m *Manager) LoginWithGoogle(ctx context.Context, idToken string) (*domain.Session, error) {
	session, err := m.auth.LoginWithGoogle(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return session, m.establish(ctx, session)
}

func (m *Manager) establish(ctx context.Context, session *domain.Session) error {
	m.auth.SetToken(session.Token)
	if err := m.storage.Set(ctx, TokenKey, []byte(session.Token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	m.logger.Info("session established", "username", session.User.Username)
	return nil
}

// Logout drops the token locally. The platform has no server-side logout.
func (m *Manager) Logout(ctx context.Context) error {
	m.auth.ClearToken()
	if err := m.storage.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Check translates a 401 from any authenticated call into a local teardown
// plus ErrSessionExpired; other errors pass through unchanged.
func (m *Manager) Check(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	m.logger.Warn("authenticated call rejected, tearing session down")
	if logoutErr := m.Logout(ctx); logoutErr != nil {
		m.logger.Error("session teardown failed", "error", logoutErr)
	}
	return ErrSessionExpired
}
