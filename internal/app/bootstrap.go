package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"foodrelay/internal/config"
	"foodrelay/pkg/logging"
)

// Application represents the main application structure that bootstraps and runs foodrelay.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, initializes logging and builds the
// services. It returns an error if the configuration cannot be loaded.
func NewApplication(cfg *Config) (*Application, error) {
	if err := Bootstrap(cfg); err != nil {
		return nil, err
	}

	return &Application{
		config:   cfg,
		services: InitializeServices(*cfg.RelayConfig),
	}, nil
}

// Bootstrap loads the relay configuration into cfg and initializes logging.
// Commands that only need the configuration (config, token, search) call
// this directly.
func Bootstrap(cfg *Config) error {
	var logOutput io.Writer = os.Stdout
	if cfg.LogOutput != nil {
		logOutput = cfg.LogOutput
	}

	// Log loader messages at the requested verbosity before the file is read.
	bootLevel := logging.LevelInfo
	if cfg.Debug {
		bootLevel = logging.LevelDebug
	}
	logging.InitForCLI(bootLevel, logOutput)

	relayCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.RelayConfig = &relayCfg

	level, _ := logging.ParseLevel(relayCfg.Logging.Level)
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logging.Init(level, logging.Format(relayCfg.Logging.Format), logOutput)

	return nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run serves until ctx is cancelled or the process receives SIGINT/SIGTERM,
// then shuts the server down gracefully.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := a.services.Server
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logging.Error("Bootstrap", err, "HTTP server stopped")
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("Bootstrap", "Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.RelayConfig.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-serveErr
}
