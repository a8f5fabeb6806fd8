package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"foodrelay/internal/config"
	"foodrelay/pkg/logging"
)

// Server serves the relay routes.
type Server struct {
	config        config.ServerConfig
	searchHandler http.Handler

	mu         sync.Mutex
	httpServer *http.Server
	addr       net.Addr
	closed     bool
}

// NewServer creates a server that routes GET /search to searchHandler.
func NewServer(cfg config.ServerConfig, searchHandler http.Handler) *Server {
	return &Server{
		config:        cfg,
		searchHandler: searchHandler,
	}
}

// CreateMux builds the routed handler with middleware applied.
func (s *Server) CreateMux() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /search", s.searchHandler)
	return requestIDMiddleware(accessLogMiddleware(mux))
}

// ListenAndServe binds the configured address and serves until Shutdown.
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Address(), err)
	}
	return s.Serve(listener)
}

// Serve serves on an existing listener until Shutdown.
// It returns nil after a graceful shutdown.
func (s *Server) Serve(listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.CreateMux(),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return listener.Close()
	}
	s.httpServer = httpServer
	s.addr = listener.Addr()
	s.mu.Unlock()

	logging.Info("HTTP", "Proxy listening on %s", listener.Addr())

	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the bound address, or nil before Serve has started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Shutdown gracefully shuts down the server. A later Serve call returns
// immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer == nil {
		return nil
	}
	return httpServer.Shutdown(ctx)
}
