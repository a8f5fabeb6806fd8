// Package server hosts the relay's inbound HTTP surface.
//
// It mounts the search handler at GET /search, wraps it with request-ID and
// access-log middleware, and owns the net/http server lifecycle including
// graceful shutdown.
package server
