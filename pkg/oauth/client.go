package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgstrings "foodrelay/pkg/strings"
)

// ClientCredentialsRequest describes one client_credentials exchange.
type ClientCredentialsRequest struct {
	TokenEndpoint string
	ClientID      string
	ClientSecret  string
	Scope         string
}

// Client handles OAuth 2.0 token endpoint requests.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// ClientOption configures the OAuth client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock overrides the time source used to compute token expiry.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a new OAuth client. The default HTTP client carries no
// timeout; callers bound requests through the context.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ClientCredentials exchanges a client ID and secret for an access token.
// Credentials are sent with HTTP Basic authentication. The returned token has
// ExpiresAt set from the response's expires_in, or DefaultExpiresIn.
func (c *Client) ClientCredentials(ctx context.Context, r ClientCredentialsRequest) (*Token, error) {
	data := url.Values{
		"grant_type": {GrantTypeClientCredentials},
	}
	if r.Scope != "" {
		data.Set("scope", r.Scope)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.TokenEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.SetBasicAuth(r.ClientID, r.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return c.doTokenRequest(req)
}

// doTokenRequest performs a token endpoint request.
func (c *Client) doTokenRequest(req *http.Request) (*Token, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("Token request failed",
			"status", resp.StatusCode,
			"body", pkgstrings.ForLog(body))
		return nil, &UpstreamAuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, errors.New("failed to parse token response: access_token missing")
	}

	token.SetExpiresAt(c.now())

	return &token, nil
}
