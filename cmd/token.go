package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	pkgoauth "foodrelay/pkg/oauth"
)

var tokenShowValue bool

// tokenCmd checks that the configured credentials can be exchanged.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Exchange the configured credentials for a token and show its status",
	Long: `Performs one client_credentials exchange with the identity provider using
the configured client ID and secret, and prints the result.

Exit codes:
  0  token obtained
  2  client ID or secret not configured
  3  identity provider rejected the credentials`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, services, err := loadServices(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "FatSecret Token")
	fmt.Fprintf(out, "  Endpoint:  %s\n", cfg.RelayConfig.FatSecret.TokenURL)

	token, err := services.TokenManager.Token()
	if err != nil {
		fmt.Fprintf(out, "  Status:    %s\n", text.FgRed.Sprint("Failed"))
		fmt.Fprintf(out, "  Error:     %s\n", err)
		return err
	}

	fmt.Fprintf(out, "  Status:    %s\n", text.FgGreen.Sprint("Obtained"))
	fmt.Fprintf(out, "  Type:      %s\n", token.Type())
	printExpiry(out, token.Expiry, time.Now())

	value := fmt.Sprint(pkgoauth.NewRedactedToken(token.AccessToken))
	if tokenShowValue {
		value = token.AccessToken
	}
	fmt.Fprintf(out, "  Token:     %s\n", value)
	return nil
}

func printExpiry(out io.Writer, expiresAt, now time.Time) {
	remaining := expiresAt.Sub(now).Round(time.Second)
	fmt.Fprintf(out, "  Expires:   %s (in %s)\n", expiresAt.Format(time.RFC3339), remaining)
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().BoolVar(&tokenShowValue, "show-token", false, "Print the access token value instead of redacting it")
}
