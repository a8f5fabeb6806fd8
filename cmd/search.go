package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var searchQuiet bool

// searchCmd performs one relay search from the terminal.
var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Run one food search through the relay",
	Long: `Runs the same round trip as GET /search without starting a server:
obtain a token, call foods.search.v2 and print the upstream body to stdout.
The upstream status is printed to stderr.

Examples:
  foodrelay search banana
  foodrelay search green apple --quiet`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	_, services, err := loadServices(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")

	var s *spinner.Spinner
	if !searchQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = fmt.Sprintf(" Searching for %q...", query)
		s.Start()
	}

	result, err := services.Relay.Search(commandContext(cmd), query)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	status := fmt.Sprintf("%d %s", result.StatusCode, http.StatusText(result.StatusCode))
	if result.StatusCode >= 200 && result.StatusCode <= 299 {
		status = text.FgGreen.Sprint(status)
	} else {
		status = text.FgRed.Sprint(status)
	}
	if !searchQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Upstream status: %s\n", status)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(result.Body))

	if result.StatusCode < 200 || result.StatusCode > 299 {
		return fmt.Errorf("upstream returned status %d", result.StatusCode)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVarP(&searchQuiet, "quiet", "q", false, "Suppress progress and status output")
}
