package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"foodrelay/internal/app"
)

// loadServices bootstraps configuration and logging for one-shot commands.
// Logs go to stderr so stdout carries only command output.
func loadServices(cmd *cobra.Command) (*app.Config, *app.Services, error) {
	cfg := app.NewConfig(debug, configPath)
	cfg.LogOutput = cmd.ErrOrStderr()

	if err := app.Bootstrap(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, app.InitializeServices(*cfg.RelayConfig), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
