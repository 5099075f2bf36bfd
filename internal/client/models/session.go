package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/fictionalpotato/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated identity held by the router together with
// its token material. A Session always carries a user and a refresh token.
type Session struct {
	User         PublicUser
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// NewSession builds a Session from an authentication result. ExpiresAt is
// taken from the access token's exp claim when the access token is a JWT
// and stays zero otherwise; the signature is not checked.
func NewSession(user PublicUser, accessToken, refreshToken string) (Session, error) {
	if !user.Valid() {
		return Session{}, common.ErrMissingUser
	}
	if refreshToken == "" {
		return Session{}, common.ErrMissingRefreshToken
	}

	s := Session{User: user, AccessToken: accessToken, RefreshToken: refreshToken}
	if accessToken == "" {
		return s, nil
	}

	// Opaque access tokens are accepted as is.
	if exp, err := TokenExpiry(accessToken); err == nil {
		s.ExpiresAt = exp
	}
	return s, nil
}

// TokenExpiry reads the exp claim of a JWT without verifying it. A token
// without exp yields the zero time.
func TokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// Expired reports whether the access token has expired at now. Sessions
// without a known expiry never report expired; the refresh token decides.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
