package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <sobject>",
	Short: "Build and print the SOQL query for an SObject",
	Long: `Build the SOQL query that an extraction would run, without executing it.

The select list comes from the SObject metadata, narrowed by --schema or
--fields when given. The WHERE clause comes from the filter flags: an
explicit --after/--before interval takes precedence over a relative
--duration/--offset window.

Examples:
  # Full catalog, last day of changes
  sfq query Account --duration "1 days"

  # Narrowed select list with an explicit interval
  sfq query Opportunity --fields Id,Name,Amount --after 2019-03-01T00:00:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	schema, err := schemaFromFlags(flags)
	if err != nil {
		return err
	}

	s, err := newSession(flags)
	if err != nil {
		return err
	}
	defer s.Close()

	query, err := buildSObjectQuery(cmd.Context(), s, args[0], sourceConfigFromFlags(flags), schema, time.Now())
	if err != nil {
		return err
	}

	fmt.Println(query)
	return nil
}
