package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"foodrelay/internal/app"
)

// serveCmd starts the relay HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the relay HTTP server",
	Long: `Starts the relay and serves GET /search?q=<text>.

Credentials are read from FATSECRET_CLIENT_ID and FATSECRET_CLIENT_SECRET,
the listening port from PORT (default 3000). Settings in config.yaml under
--config-path are applied first and overridden by the environment.

The server runs until interrupted (Ctrl+C or SIGTERM) and then drains
in-flight requests before exiting.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(debug, configPath)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
