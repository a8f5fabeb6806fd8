package oauth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestClientCredentials(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sends basic auth and form body", func(t *testing.T) {
		var gotBody, gotContentType, gotMethod string
		var gotUser, gotPass string
		var gotBasic bool

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			gotUser, gotPass, gotBasic = r.BasicAuth()
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":86400}`))
		}))
		defer server.Close()

		c := NewClient(WithClock(fixedClock(now)))
		token, err := c.ClientCredentials(context.Background(), ClientCredentialsRequest{
			TokenEndpoint: server.URL,
			ClientID:      "client-id",
			ClientSecret:  "client-secret",
			Scope:         "basic",
		})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
		assert.True(t, gotBasic)
		assert.Equal(t, "client-id", gotUser)
		assert.Equal(t, "client-secret", gotPass)
		assert.Equal(t, "grant_type=client_credentials&scope=basic", gotBody)

		assert.Equal(t, "tok-1", token.AccessToken)
		assert.Equal(t, now.Add(24*time.Hour), token.ExpiresAt)
	})

	t.Run("defaults expiry when expires_in is absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token":"tok-2"}`))
		}))
		defer server.Close()

		c := NewClient(WithClock(fixedClock(now)))
		token, err := c.ClientCredentials(context.Background(), ClientCredentialsRequest{TokenEndpoint: server.URL})
		require.NoError(t, err)
		assert.Equal(t, now.Add(3600000*time.Millisecond), token.ExpiresAt)
	})

	t.Run("non-2xx returns UpstreamAuthError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("invalid_client"))
		}))
		defer server.Close()

		c := NewClient()
		_, err := c.ClientCredentials(context.Background(), ClientCredentialsRequest{TokenEndpoint: server.URL})
		require.Error(t, err)

		var authErr *UpstreamAuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		assert.Equal(t, "invalid_client", authErr.Body)
		assert.Equal(t, "token error: 401 invalid_client", err.Error())
	})

	t.Run("missing access_token is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"expires_in":60}`))
		}))
		defer server.Close()

		c := NewClient()
		_, err := c.ClientCredentials(context.Background(), ClientCredentialsRequest{TokenEndpoint: server.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access_token")
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		c := NewClient()
		_, err := c.ClientCredentials(context.Background(), ClientCredentialsRequest{TokenEndpoint: server.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse token response")
	})

	t.Run("network failure returns TransportError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		endpoint := server.URL
		server.Close()

		c := NewClient()
		_, err := c.ClientCredentials(context.Background(), ClientCredentialsRequest{TokenEndpoint: endpoint})
		require.Error(t, err)

		var transportErr *TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, endpoint, transportErr.Endpoint)
	})
}
