// Package app wires foodrelay together.
//
// NewApplication runs the bootstrap sequence:
//
//  1. Load configuration (defaults, config.yaml, environment)
//  2. Initialize logging from the configured level and format
//  3. Build the services: token cache Manager, search Relay, HTTP Server
//
// Run serves until the context is cancelled or SIGINT/SIGTERM arrives, then
// drains in-flight requests within the configured shutdown timeout.
//
// Example usage:
//
//	cfg := app.NewConfig(false, "")
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	return application.Run(ctx)
package app
