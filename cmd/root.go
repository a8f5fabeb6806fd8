package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"foodrelay/internal/oauth"
	pkgoauth "foodrelay/pkg/oauth"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeCredentialsMissing indicates the client ID or secret is not configured.
	ExitCodeCredentialsMissing = 2
	// ExitCodeAuthFailed indicates the identity provider rejected the exchange.
	ExitCodeAuthFailed = 3
)

// Global flags shared by all subcommands.
var (
	debug      bool
	configPath string
)

// rootCmd represents the base command for the foodrelay application.
var rootCmd = &cobra.Command{
	Use:   "foodrelay",
	Short: "Credential-shielding relay for the FatSecret food search API",
	Long: `foodrelay keeps FatSecret API credentials on the server side.
It exchanges them for a short-lived bearer token, caches that token in memory
and relays GET /search?q=<text> to the foods.search API, returning the
upstream response unchanged.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "foodrelay version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var configErr *oauth.CredentialConfigurationError
	if errors.As(err, &configErr) {
		return ExitCodeCredentialsMissing
	}

	var authErr *pkgoauth.UpstreamAuthError
	if errors.As(err, &authErr) {
		return ExitCodeAuthFailed
	}

	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Configuration directory containing config.yaml (default $HOME/.config/foodrelay)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
