package cmd

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"foodrelay/internal/config"
)

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Loads defaults, config.yaml and the environment exactly as serve does and
prints the resulting settings. The client secret is always redacted.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadServices(cmd)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"SETTING", "VALUE"})
	t.AppendRows(configRows(*cfg.RelayConfig))
	t.Render()
	return nil
}

func configRows(c config.RelayConfig) []table.Row {
	notSet := func(v string) string {
		if v == "" {
			return "(not set)"
		}
		return v
	}
	secret := "(not set)"
	if !c.FatSecret.ClientSecret.IsEmpty() {
		secret = c.FatSecret.ClientSecret.String()
	}

	return []table.Row{
		{"server.address", c.Server.Address()},
		{"server.shutdownTimeout", c.Server.ShutdownTimeout.String()},
		{"fatsecret.clientId", notSet(c.FatSecret.ClientID)},
		{"fatsecret.clientSecret", secret},
		{"fatsecret.tokenUrl", c.FatSecret.TokenURL},
		{"fatsecret.searchUrl", c.FatSecret.SearchURL},
		{"fatsecret.scope", c.FatSecret.Scope},
		{"fatsecret.singleFlight", strconv.FormatBool(c.FatSecret.SingleFlight)},
		{"fatsecret.upstreamTimeout", c.FatSecret.UpstreamTimeout.String()},
		{"logging.level", c.Logging.Level},
		{"logging.format", c.Logging.Format},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
