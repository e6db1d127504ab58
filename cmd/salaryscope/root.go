package main

import (
	"github.com/spf13/cobra"

	"github.com/schroedermarius/salaryscope/internal/cli"
	"github.com/schroedermarius/salaryscope/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "salaryscope",
	Short: "Structured prompting demo: salary analysis with an enforced JSON schema",
	Long: `Salaryscope sends employee records to a chat completion endpoint with an
enforced JSON schema response format, then sanitizes and decodes the model's
answer into a typed salary-by-department table.

The pipeline is deliberately simple: one request, one response, no retries.
A response that cannot be decoded is reported as a failure, not repaired.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.salaryscope/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "table", "output format: table, yaml, or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(configCmd)
}
