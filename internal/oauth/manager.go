package oauth

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"foodrelay/pkg/logging"
	pkgoauth "foodrelay/pkg/oauth"
)

const (
	// DefaultScope is requested on every exchange.
	DefaultScope = "basic"

	// refreshKey is the singleflight key; there is only one credential.
	refreshKey = "client_credentials"
)

// ManagerConfig holds what the Manager needs to perform an exchange.
type ManagerConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret pkgoauth.RedactedToken
	Scope        string

	// SingleFlight makes concurrent refreshes share one exchange.
	SingleFlight bool
}

// Manager hands out bearer tokens from the cached credential and refreshes
// it from the identity provider when it is missing or near expiry.
type Manager struct {
	config ManagerConfig
	client *pkgoauth.Client
	store  credentialStore
	now    func() time.Time
	margin time.Duration

	group singleflight.Group
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	httpClient *http.Client
	now        func() time.Time
}

// WithHTTPClient sets the HTTP client used for exchanges.
func WithHTTPClient(httpClient *http.Client) ManagerOption {
	return func(o *managerOptions) {
		o.httpClient = httpClient
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ManagerOption {
	return func(o *managerOptions) {
		o.now = now
	}
}

// NewManager creates a Manager with an empty cache.
func NewManager(cfg ManagerConfig, opts ...ManagerOption) *Manager {
	o := managerOptions{
		httpClient: &http.Client{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.Scope == "" {
		cfg.Scope = DefaultScope
	}

	return &Manager{
		config: cfg,
		client: pkgoauth.NewClient(
			pkgoauth.WithHTTPClient(o.httpClient),
			pkgoauth.WithClock(o.now),
			pkgoauth.WithLogger(logging.Logger()),
		),
		now:    o.now,
		margin: pkgoauth.DefaultExpiryMargin,
	}
}

// ObtainToken returns a bearer token valid for at least the safety margin.
// A cache hit makes no network call; a miss makes exactly one exchange.
func (m *Manager) ObtainToken(ctx context.Context) (string, error) {
	cred, err := m.obtain(ctx)
	if err != nil {
		return "", err
	}
	return cred.Token, nil
}

// Token implements oauth2.TokenSource.
func (m *Manager) Token() (*oauth2.Token, error) {
	cred, err := m.obtain(context.Background())
	if err != nil {
		return nil, err
	}
	token := &pkgoauth.Token{
		AccessToken: cred.Token,
		TokenType:   cred.TokenType,
		ExpiresAt:   cred.ExpiresAt,
	}
	return token.ToOAuth2Token(), nil
}

// Snapshot returns the currently cached credential without refreshing it.
func (m *Manager) Snapshot() CachedCredential {
	return m.store.load()
}

func (m *Manager) obtain(ctx context.Context) (CachedCredential, error) {
	if cred := m.store.load(); cred.UsableAt(m.now(), m.margin) {
		logging.Debug("TokenCache", "Reusing cached token (expires %s)", cred.ExpiresAt.Format(time.RFC3339))
		return cred, nil
	}

	if !m.config.SingleFlight {
		return m.refresh(ctx)
	}

	result, err, shared := m.group.Do(refreshKey, func() (interface{}, error) {
		// Another caller may have refreshed while we waited for the group.
		if cred := m.store.load(); cred.UsableAt(m.now(), m.margin) {
			return cred, nil
		}
		return m.refresh(ctx)
	})
	if err != nil {
		return CachedCredential{}, err
	}
	if shared {
		logging.Debug("TokenCache", "Shared in-flight token exchange")
	}
	return result.(CachedCredential), nil
}

// refresh performs one exchange and replaces the cached credential on success.
func (m *Manager) refresh(ctx context.Context) (CachedCredential, error) {
	if err := m.checkCredentials(); err != nil {
		return CachedCredential{}, err
	}

	logging.Debug("TokenCache", "Exchanging client credentials at %s", m.config.TokenURL)

	token, err := m.client.ClientCredentials(ctx, pkgoauth.ClientCredentialsRequest{
		TokenEndpoint: m.config.TokenURL,
		ClientID:      m.config.ClientID,
		ClientSecret:  m.config.ClientSecret.Value(),
		Scope:         m.config.Scope,
	})
	if err != nil {
		return CachedCredential{}, err
	}

	cred := CachedCredential{
		Token:     token.AccessToken,
		TokenType: token.TokenType,
		ExpiresAt: token.ExpiresAt,
	}
	m.store.store(cred)

	logging.Info("TokenCache", "Obtained new access token (expires %s)", cred.ExpiresAt.Format(time.RFC3339))
	return cred, nil
}

func (m *Manager) checkCredentials() error {
	var missing []string
	if m.config.ClientID == "" {
		missing = append(missing, "client ID")
	}
	if m.config.ClientSecret.IsEmpty() {
		missing = append(missing, "client secret")
	}
	if len(missing) > 0 {
		return &CredentialConfigurationError{Missing: missing}
	}
	return nil
}
