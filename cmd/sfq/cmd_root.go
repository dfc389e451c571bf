package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sfq/internal/formatter"
)

// Version information.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Command flags.
var flags = NewCommandFlags()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "sfq",
	Short:   "Extract Salesforce SObject records for batch pipelines",
	Version: Version,
	Long: `Extract Salesforce SObject records for batch pipelines.

Examples:
  # Validate filter configuration
  sfq validate --after 2019-03-12T11:29:52Z --duration "1 days"

  # Show the SOQL that would run for the last day of Account changes
  sfq query Account --duration "1 days"

  # Extract opportunities modified in March 2019 as CSV
  sfq extract Opportunity --after 2019-03-01T00:00:00Z --before 2019-04-01T00:00:00Z -o csv`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		configureLogging(flags.Debug)

		// Only validate format for commands that output records. We
		// identify them by an "output" annotation.
		if cmd.Annotations["output"] == "true" {
			if format := cmd.Flag("format").Value.String(); !formatter.ValidFormats[format] {
				return newFormatError(format)
			}
		}
		return nil
	},
}

// configureLogging wires the global zerolog logger to stderr.
func configureLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	flags.AddCommonFlags(rootCmd)
	AddCommands()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// AddCommands adds all the commands to the root command.
func AddCommands() {
	flags.AddFilterFlags(validateCmd)

	flags.AddFilterFlags(queryCmd)
	flags.AddQueryFlags(queryCmd)

	flags.AddFilterFlags(extractCmd)
	flags.AddQueryFlags(extractCmd)
	flags.AddOutputFlags(extractCmd)
	extractCmd.Annotations = map[string]string{"output": "true"}

	flags.AddOutputFlags(executeCmd)
	executeCmd.Annotations = map[string]string{"output": "true"}

	flags.AddQueryFlags(describeCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(describeCmd)

	initCacheCommands()
}
