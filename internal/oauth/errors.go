package oauth

import (
	"fmt"
	"strings"
)

// CredentialConfigurationError is returned by every exchange attempt while
// the client ID or secret is missing. It is never retried.
type CredentialConfigurationError struct {
	Missing []string
}

func (e *CredentialConfigurationError) Error() string {
	return fmt.Sprintf("client credentials not configured: missing %s", strings.Join(e.Missing, " and "))
}
