package api

import "github.com/dmitrijs2005/fictionalpotato/internal/client/models"

// AuthResponse is the success body of every auth endpoint.
type AuthResponse struct {
	User         models.PublicUser `json:"user"`
	AccessToken  string            `json:"access_token,omitempty"`
	RefreshToken string            `json:"refresh_token"`
}

// ResponseError is the failure body of every auth endpoint.
type ResponseError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
