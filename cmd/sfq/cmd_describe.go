package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sfq/internal/salesforce"
)

var describeCmd = &cobra.Command{
	Use:   "describe <sobject>",
	Short: "Show the selectable field catalog of an SObject",
	Long: `Show the field catalog of an SObject as the query builder sees it:
compound fields are replaced by their leaf components. Results are served
from the local describe cache when fresh; use --refresh to force a fetch.

Examples:
  sfq describe Account
  sfq describe Account --refresh`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	s, err := newSession(flags)
	if err != nil {
		return err
	}
	defer s.Close()

	descriptor, err := salesforce.FromName(cmd.Context(), s, args[0], salesforce.CompoundFields)
	if err != nil {
		return err
	}

	result, err := s.DescribeSObject(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	selectable := make(map[string]bool, len(descriptor.FieldNames()))
	for _, name := range descriptor.FieldNames() {
		selectable[name] = true
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tTYPE\tSELECTABLE")
	for _, field := range result.Fields {
		fmt.Fprintf(tw, "%s\t%s\t%t\n", field.Name, field.Type, selectable[field.Name])
	}
	return tw.Flush()
}
