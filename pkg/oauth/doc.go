// Package oauth provides the OAuth 2.0 client credentials primitives used by
// the relay: the token endpoint response type, expiry arithmetic and a small
// HTTP client that performs the exchange.
//
// # Core Components
//
//   - Token: token endpoint response with expiry checking
//   - Client: performs client_credentials exchanges against a token endpoint
//   - UpstreamAuthError / TransportError: typed exchange failures
//
// The package holds no cached state. Caching lives in internal/oauth, which
// wraps Client with the process-wide credential.
//
// # Usage
//
//	client := oauth.NewClient(oauth.WithHTTPClient(httpClient))
//	token, err := client.ClientCredentials(ctx, oauth.ClientCredentialsRequest{
//		TokenEndpoint: "https://oauth.fatsecret.com/connect/token",
//		ClientID:      id,
//		ClientSecret:  secret,
//		Scope:         "basic",
//	})
package oauth
