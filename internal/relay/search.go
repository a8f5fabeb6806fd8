package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	pkgoauth "foodrelay/pkg/oauth"
)

const (
	// SearchMethod is the FatSecret API method for basic food search.
	SearchMethod = "foods.search.v2"

	// MaxResults is the fixed page size requested from upstream.
	MaxResults = 5

	// PageNumber is the fixed page requested from upstream.
	PageNumber = 0
)

// TokenProvider supplies a bearer token valid for the next request.
type TokenProvider interface {
	ObtainToken(ctx context.Context) (string, error)
}

// Result is an upstream response as received.
type Result struct {
	StatusCode int
	Body       []byte
}

// Relay issues searches against the upstream API.
type Relay struct {
	searchURL  string
	tokens     TokenProvider
	httpClient *http.Client
}

// Option configures a Relay.
type Option func(*Relay)

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(r *Relay) {
		r.httpClient = httpClient
	}
}

// New creates a Relay that searches searchURL using tokens from tokens.
func New(searchURL string, tokens TokenProvider, opts ...Option) *Relay {
	r := &Relay{
		searchURL:  searchURL,
		tokens:     tokens,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Search obtains a token and performs one upstream search for query.
func (r *Relay) Search(ctx context.Context, query string) (*Result, error) {
	token, err := r.tokens.ObtainToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BuildSearchURL(r.searchURL, query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	(&oauth2.Token{AccessToken: token, TokenType: pkgoauth.TokenTypeBearer}).SetAuthHeader(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "response read", Err: err}
	}

	return &Result{StatusCode: resp.StatusCode, Body: body}, nil
}

// BuildSearchURL appends the fixed foods.search.v2 parameters and the
// encoded query to base. The query is escaped the way encodeURIComponent
// does it: %20 for spaces and !'()* left literal.
func BuildSearchURL(base, query string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("?method=")
	b.WriteString(SearchMethod)
	b.WriteString("&search_expression=")
	b.WriteString(encodeQueryComponent(query))
	b.WriteString("&format=json")
	fmt.Fprintf(&b, "&max_results=%d&page_number=%d", MaxResults, PageNumber)
	return b.String()
}

// componentUnescaper undoes QueryEscape for the characters
// encodeURIComponent leaves alone.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeQueryComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
