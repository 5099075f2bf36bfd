package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/fictionalpotato/internal/common"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	refreshPath  = "/auth/refresh"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 1 << 20
)

// Client talks to the authentication API over HTTP. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the API rooted at baseURL. Every request
// is bounded by timeout; zero means no client-side deadline.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse server url: unsupported scheme %q", u.Scheme)
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Login exchanges an identifier and password for a session.
func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthResponse, error) {
	return c.post(ctx, loginPath, loginRequest{Identifier: identifier, Password: password}, "")
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, username, password string) (*AuthResponse, error) {
	return c.post(ctx, registerPath, registerRequest{Username: username, Password: password}, "")
}

// Refresh trades a refresh token for a new session. The server rotates the
// refresh token; callers must persist the returned one.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	return c.post(ctx, refreshPath, nil, refreshToken)
}

func (c *Client) post(ctx context.Context, path string, body any, bearer string) (*AuthResponse, error) {
	var payload io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, wrap(ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, wrap(ErrNetwork, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeSuccess(data)
	}
	return nil, decodeFailure(resp.StatusCode, data)
}

func decodeSuccess(data []byte) (*AuthResponse, error) {
	var out AuthResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, wrap(ErrMalformedResponse, err)
	}
	if out.RefreshToken == "" {
		return nil, wrap(ErrMalformedResponse, errors.New("no refresh_token in response"))
	}
	if !out.User.Valid() {
		return nil, wrap(ErrMalformedResponse, errors.New("no user in response"))
	}
	return &out, nil
}

func decodeFailure(status int, data []byte) error {
	var body ResponseError
	if err := json.Unmarshal(data, &body); err != nil {
		return wrap(ErrMalformedResponse, fmt.Errorf("status %d: %w", status, err))
	}

	msg := body.Error.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &ServerError{Status: status, Message: msg}
}
