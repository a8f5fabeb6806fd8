package oauth

import (
	"fmt"
)

// UpstreamAuthError is returned when the identity provider answers a token
// request with a non-2xx status. Body holds the raw response text.
type UpstreamAuthError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamAuthError) Error() string {
	return fmt.Sprintf("token error: %d %s", e.StatusCode, e.Body)
}

// TransportError wraps a network-level failure talking to the token endpoint.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("token request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
