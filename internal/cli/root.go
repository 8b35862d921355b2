package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "txnvalidate",
	Short: "Validate CSV transaction files and report per-row errors",
	Long: `txnvalidate ingests a CSV file of financial transactions and produces a
validated, typed record set plus a row-attributed error report.

A file is either rejected outright (missing headers, wrong extension, no
data rows) or accepted with every row classified as valid or invalid; row
problems never abort a run. Validation policy (accepted date formats,
identifier length rule, currency allow-list, header strictness) comes from
a built-in profile or a YAML policy file.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
