package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sfq/internal/source"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the temporal filter configuration",
	Long: `Validate the temporal filter configuration without contacting Salesforce.

Every invalid property is reported, not just the first one.

Examples:
  # Check an explicit interval
  sfq validate --after 2019-03-12T11:29:52Z --before 2019-04-01T00:00:00Z

  # Check a relative window
  sfq validate --duration "1 days, 2 hours" --offset "30 minutes"`,
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg := sourceConfigFromFlags(flags)

	var collector source.FailureCollector
	cfg.ValidateFilters(&collector)

	if collector.HasFailures() {
		for _, failure := range collector.Failures() {
			fmt.Println(failure)
		}
		return fmt.Errorf("filter validation found %d problem(s)", len(collector.Failures()))
	}

	fmt.Println("filter configuration is valid")
	return nil
}
