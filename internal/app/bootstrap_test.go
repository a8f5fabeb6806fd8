package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFatSecret serves both the token endpoint and the search endpoint.
type fakeFatSecret struct {
	server    *httptest.Server
	exchanges atomic.Int32
	searches  atomic.Int32
}

func newFakeFatSecret(t *testing.T) *fakeFatSecret {
	t.Helper()
	f := &fakeFatSecret{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /connect/token", func(w http.ResponseWriter, r *http.Request) {
		f.exchanges.Add(1)
		if id, secret, ok := r.BasicAuth(); !ok || id != "test-id" || secret != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("invalid_client"))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"integration-token","expires_in":3600}`))
	})
	mux.HandleFunc("GET /rest/server.api", func(w http.ResponseWriter, r *http.Request) {
		f.searches.Add(1)
		if r.Header.Get("Authorization") != "Bearer integration-token" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":9}}`))
			return
		}
		_, _ = w.Write([]byte(`{"foods":{"query":"` + r.URL.Query().Get("search_expression") + `"}}`))
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func setRelayEnv(t *testing.T, f *fakeFatSecret, secret string) {
	t.Helper()
	t.Setenv("FATSECRET_CLIENT_ID", "test-id")
	t.Setenv("FATSECRET_CLIENT_SECRET", secret)
	t.Setenv("FATSECRET_TOKEN_URL", f.server.URL+"/connect/token")
	t.Setenv("FATSECRET_SEARCH_URL", f.server.URL+"/rest/server.api")
	t.Setenv("PORT", "0")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
}

func startApplication(t *testing.T) (*Application, string, context.CancelFunc, <-chan error) {
	t.Helper()

	cfg := NewConfig(false, t.TempDir())
	cfg.LogOutput = io.Discard

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	var baseURL string
	require.Eventually(t, func() bool {
		addr := application.Services().Server.Addr()
		if addr == nil {
			return false
		}
		baseURL = "http://" + addr.String()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	return application, baseURL, cancel, done
}

func getJSON(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	return resp.StatusCode, body
}

func TestApplication_EndToEnd(t *testing.T) {
	f := newFakeFatSecret(t)
	setRelayEnv(t, f, "test-secret")

	_, baseURL, cancel, done := startApplication(t)

	status, body := getJSON(t, baseURL+"/search?q=green%20apple")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"foods":{"query":"green apple"}}`, string(body))

	status, _ = getJSON(t, baseURL+"/search?q=pear")
	assert.Equal(t, http.StatusOK, status)

	assert.Equal(t, int32(1), f.exchanges.Load(), "second search reuses the cached token")
	assert.Equal(t, int32(2), f.searches.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestApplication_TokenFailureIs500(t *testing.T) {
	f := newFakeFatSecret(t)
	setRelayEnv(t, f, "wrong-secret")

	_, baseURL, cancel, done := startApplication(t)
	defer func() {
		cancel()
		<-done
	}()

	status, body := getJSON(t, baseURL+"/search?q=banana")
	assert.Equal(t, http.StatusInternalServerError, status)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "token error: 401 invalid_client", payload["error"])
	assert.Equal(t, int32(0), f.searches.Load())
}

func TestBootstrap_DebugOverridesConfiguredLevel(t *testing.T) {
	f := newFakeFatSecret(t)
	setRelayEnv(t, f, "test-secret")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("logging:\n  level: error\n"), 0644))

	var buf bytes.Buffer
	cfg := NewConfig(true, dir)
	cfg.LogOutput = &buf

	require.NoError(t, Bootstrap(cfg))
	require.NotNil(t, cfg.RelayConfig)
	assert.Equal(t, "error", cfg.RelayConfig.Logging.Level)
	assert.Contains(t, buf.String(), "Loaded configuration from")
}

func TestBootstrap_InvalidConfiguration(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := NewConfig(false, t.TempDir())
	cfg.LogOutput = io.Discard

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
