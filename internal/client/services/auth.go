// Package services contains application services for the client.
// This file defines the authentication service: login, registration, silent
// session restore from the stored refresh token, and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/api"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/tokenstore"
	"github.com/dmitrijs2005/fictionalpotato/internal/logging"
)

// ErrNotAuthenticated is returned by Restore when no session can be
// recovered without user interaction.
var ErrNotAuthenticated = errors.New("not authenticated")

// API is the part of the HTTP client the service needs.
type API interface {
	Login(ctx context.Context, identifier, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, username, password string) (*api.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.AuthResponse, error)
}

// AuthService defines authentication operations for the screens.
//
// Contract:
//   - Login / Register: authenticate against the server and persist the
//     returned refresh token.
//   - Restore: rebuild a session from the stored refresh token.
//   - Logout: forget the stored refresh token.
//
// A failure to persist the token after a successful exchange is logged and
// otherwise ignored: the session is still returned, the next launch simply
// asks for credentials again.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (models.Session, error)
	Register(ctx context.Context, username, password string) (models.Session, error)
	Restore(ctx context.Context) (models.Session, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api   API
	store tokenstore.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and token store.
func NewAuthService(client API, store tokenstore.Store, log logging.Logger) AuthService {
	return &authService{api: client, store: store, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, identifier, password string) (models.Session, error) {
	a.log.Info(ctx, "login attempt", "identifier", identifier)

	resp, err := a.api.Login(ctx, identifier, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	return a.establish(ctx, resp)
}

func (a *authService) Register(ctx context.Context, username, password string) (models.Session, error) {
	a.log.Info(ctx, "registration attempt", "username", username)

	resp, err := a.api.Register(ctx, username, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}
	return a.establish(ctx, resp)
}

// Restore reads the stored refresh token once and trades it for a session.
// Every failure, including a missing token or an unusable store, is reported
// as ErrNotAuthenticated wrapping the cause. A token the server rejects is
// removed from the store.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	token, err := a.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			a.log.Warn(ctx, "credential store unavailable", "error", err)
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	resp, err := a.api.Refresh(ctx, token)
	if err != nil {
		if rejected(err) {
			a.log.Info(ctx, "stored token rejected, clearing it")
			if delErr := a.store.Delete(ctx); delErr != nil && !errors.Is(delErr, tokenstore.ErrNotFound) {
				a.log.Warn(ctx, "failed to clear rejected token", "error", delErr)
			}
		}
		return models.Session{}, fmt.Errorf("%w: refresh: %w", ErrNotAuthenticated, err)
	}

	s, err := a.establish(ctx, resp)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx); err != nil && !errors.Is(err, tokenstore.ErrNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// establish turns an auth response into a session and persists its refresh
// token.
func (a *authService) establish(ctx context.Context, resp *api.AuthResponse) (models.Session, error) {
	s, err := models.NewSession(resp.User, resp.AccessToken, resp.RefreshToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", api.ErrMalformedResponse, err)
	}

	if err := a.store.Set(ctx, s.RefreshToken); err != nil {
		a.log.Warn(ctx, "failed to persist refresh token", "error", err)
	}

	a.log.Info(ctx, "authenticated", "user", s.User.Username)
	return s, nil
}

func rejected(err error) bool {
	var se *api.ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden
}
