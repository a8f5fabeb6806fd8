package oauth

import (
	"time"

	"golang.org/x/oauth2"
)

// DefaultExpiryMargin is the default margin when checking token expiry.
// This accounts for clock skew and network latency.
const DefaultExpiryMargin = 30 * time.Second

// DefaultExpiresIn is the lifetime assumed when a token response omits
// expires_in or reports zero.
const DefaultExpiresIn = 3600

const (
	// GrantTypeClientCredentials is the OAuth 2.0 client credentials grant.
	GrantTypeClientCredentials = "client_credentials"

	// TokenTypeBearer is the token type sent in the Authorization header.
	TokenTypeBearer = "Bearer"
)

// Token represents an OAuth access token with associated metadata.
type Token struct {
	// AccessToken is the bearer token used for authorization.
	AccessToken string `json:"access_token"`

	// TokenType is typically "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds (from token response).
	ExpiresIn int `json:"expires_in,omitempty"`

	// ExpiresAt is the calculated expiration timestamp.
	ExpiresAt time.Time `json:"-"`

	// Scope is the granted scope(s), space-separated.
	Scope string `json:"scope,omitempty"`
}

// Lifetime returns the declared token lifetime, falling back to
// DefaultExpiresIn when expires_in is absent or zero. A negative value is
// kept, so the token is already expired when issued.
func (t *Token) Lifetime() time.Duration {
	if t.ExpiresIn == 0 {
		return DefaultExpiresIn * time.Second
	}
	return time.Duration(t.ExpiresIn) * time.Second
}

// SetExpiresAt calculates ExpiresAt relative to issuedAt.
func (t *Token) SetExpiresAt(issuedAt time.Time) {
	t.ExpiresAt = issuedAt.Add(t.Lifetime())
}

// ToOAuth2Token converts the Token to an oauth2.Token for compatibility with golang.org/x/oauth2.
func (t *Token) ToOAuth2Token() *oauth2.Token {
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = TokenTypeBearer
	}
	return &oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   tokenType,
		Expiry:      t.ExpiresAt,
	}
}
