package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	serverURL string
	format    string
	quiet     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "conflint",
	Short: "Contradiction detector for discount-campaign filter conditions",
	Long: `Conflint inspects a set of filter conditions and reports combinations
that can never match any product: impossible numeric ranges, exhausted
select values, conflicting text requirements, and inconsistent dates.

Examples:
  conflint check conditions.yaml
  conflint check conditions.yaml --format json
  conflint check conditions.yaml --server http://localhost:8080
  conflint schema`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Validate against a running conflint server instead of locally")
	rootCmd.PersistentFlags().StringVar(&format, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress output; rely on the exit code")
}
