package models

import "github.com/google/uuid"

// PublicUser is the identity the API exposes about an account.
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
}

// Valid reports whether u names an account: a non-nil ID and a username.
func (u PublicUser) Valid() bool {
	return u.ID != uuid.Nil && u.Username != ""
}

// Name returns the display name, falling back to the username.
func (u PublicUser) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
