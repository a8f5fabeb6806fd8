// Package logging provides the subsystem-tagged structured logger used across
// foodrelay.
//
// It is a thin layer over Go's log/slog. Every entry carries a subsystem
// attribute so output from the token cache, the search relay and the HTTP
// server can be told apart in a single stream.
//
// # Usage
//
//	import "foodrelay/pkg/logging"
//
//	logging.InitForCLI(logging.LevelInfo, os.Stdout)
//
//	logging.Info("Bootstrap", "Relay starting on port %d", port)
//	logging.Debug("TokenCache", "Reusing cached token (expires %s)", expiresAt)
//	logging.Error("Relay", err, "Search request failed")
//
// Use Init with FormatJSON when the output is consumed by a log collector.
package logging
