package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"sfq/internal/config"
	"sfq/internal/salesforce"
)

// CommandFlags holds all the flags for the CLI commands.
type CommandFlags struct {
	// Common flags
	Debug      bool
	ConfigPath string

	// Filter flags
	DatetimeAfter  string // interval lower bound, inclusive
	DatetimeBefore string // interval upper bound, exclusive
	Duration       string // relative window size, e.g. "1 days, 2 hours"
	Offset         string // relative window shift into the past

	// Field selection flags
	SchemaPath string // YAML narrowing schema file
	Fields     string // comma-separated narrowing field list

	// Output flags
	Format string

	// Connection flags
	APIVersion  string
	HTTPTimeout time.Duration

	// Cache flags
	CachePath string
	NoCache   bool
	Refresh   bool
}

// NewCommandFlags creates a new CommandFlags instance with default values.
func NewCommandFlags() *CommandFlags {
	timeouts := config.DefaultTimeouts()

	flags := &CommandFlags{
		Debug:       false,
		ConfigPath:  DefaultConfigPath,
		Format:      DefaultFormat,
		APIVersion:  salesforce.DefaultAPIVersion,
		HTTPTimeout: timeouts.HTTP,
		CachePath:   DefaultCachePath,
	}

	if envConfig := os.Getenv("SFQ_CONFIG"); envConfig != "" {
		flags.ConfigPath = envConfig
	}

	return flags
}

// AddCommonFlags adds common flags to a command.
func (f *CommandFlags) AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&f.Debug, "debug", f.Debug, "Enable debug output")
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", f.ConfigPath, "Connector config file")
	cmd.PersistentFlags().StringVar(&f.APIVersion, "api-version", f.APIVersion, "Salesforce REST API version")
	cmd.PersistentFlags().DurationVarP(&f.HTTPTimeout, "timeout", "t", f.HTTPTimeout, "API request timeout (e.g., 30s, 5m)")
	cmd.PersistentFlags().StringVar(&f.CachePath, "cache-path", f.CachePath, "Describe cache database path")
}

// AddFilterFlags adds the temporal filter flags to a command.
func (f *CommandFlags) AddFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.DatetimeAfter, "after", f.DatetimeAfter,
		"Select records modified at or after this datetime (e.g., 2019-03-12T11:29:52Z)")
	cmd.Flags().StringVar(&f.DatetimeBefore, "before", f.DatetimeBefore,
		"Select records modified before this datetime (e.g., 2019-03-12T11:29:52Z)")
	cmd.Flags().StringVar(&f.Duration, "duration", f.Duration,
		"Relative window size (e.g., '1 days, 2 hours, 30 minutes')")
	cmd.Flags().StringVar(&f.Offset, "offset", f.Offset,
		"Shift the relative window into the past (same format as --duration)")
}

// AddQueryFlags adds the field-selection and cache flags to a command.
func (f *CommandFlags) AddQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.SchemaPath, "schema", f.SchemaPath, "YAML schema file restricting selected fields")
	cmd.Flags().StringVar(&f.Fields, "fields", f.Fields, "Comma-separated field list restricting selected fields")
	cmd.Flags().BoolVar(&f.NoCache, "no-cache", f.NoCache, "Bypass the describe cache")
	cmd.Flags().BoolVar(&f.Refresh, "refresh", f.Refresh, "Refresh the describe cache from the API")
}

// AddOutputFlags adds the record output flags to a command.
func (f *CommandFlags) AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "format", "o", f.Format, "Output format (table, csv, json)")
}
