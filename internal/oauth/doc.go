// Package oauth owns the relay's single cached credential and decides when
// it can be reused and when it must be exchanged again.
//
// # Components
//
//   - CachedCredential: the token and its expiry, replaced as a pair
//   - Manager: ObtainToken returns a token valid for at least the safety
//     margin, exchanging client credentials with the identity provider on a
//     miss
//
// # Cache Rules
//
// A cached token is reused while now < ExpiresAt - 30s. Otherwise exactly
// one client_credentials exchange is made. Failed exchanges never touch the
// cache. The cache lives in process memory and is lost on restart.
//
// # Concurrency
//
// The read-check-refresh sequence is not serialized. Callers arriving while
// the cache is stale may each run their own exchange and the last write wins.
// Setting SingleFlight in ManagerConfig routes refreshes through a
// singleflight group so concurrent callers share one exchange instead.
package oauth
