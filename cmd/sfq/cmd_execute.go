package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var executeCmd = &cobra.Command{
	Use:   "execute -f <file>",
	Short: "Run extraction jobs from a YAML job file",
	Long: `Run one or more extraction jobs described in a YAML file.

The file holds either a single job or a collection:

  jobs:
    - name: daily-accounts
      sobject: Account
      duration: 1 days
      fields: [Id, Name]
      format: csv

Use '-f -' to read the job file from stdin.`,
	RunE: runExecuteCmd,
}

func init() {
	executeCmd.Flags().StringP("file", "f", "", "YAML job file, or - for stdin")
	if err := executeCmd.MarkFlagRequired("file"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to mark file flag as required: %v\n", err)
	}
}

func runExecuteCmd(cmd *cobra.Command, _ []string) error {
	filePath, _ := cmd.Flags().GetString("file")

	var yamlData []byte
	var err error
	if filePath == "-" {
		yamlData, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
	} else {
		yamlData, err = os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filePath, err)
		}
	}

	collection, err := ParseJobFile(yamlData)
	if err != nil {
		return err
	}

	s, err := newSession(flags)
	if err != nil {
		return err
	}
	defer s.Close()

	for i, job := range collection.Jobs {
		if job.SObject == "" {
			return fmt.Errorf("job %d names no sobject", i+1)
		}

		name := job.Name
		if name == "" {
			name = job.SObject
		}
		fmt.Printf("=== Executing job %d: %s ===\n", i+1, name)
		if job.Description != "" {
			fmt.Printf("Description: %s\n", job.Description)
		}

		schema, err := job.NarrowingSchema()
		if err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
		format := job.Format
		if format == "" {
			format = flags.Format
		}

		if err := extractSObject(cmd.Context(), s, job.SObject, job.SourceConfig(), schema, format); err != nil {
			return fmt.Errorf("job %d (%s) failed: %w", i+1, name, err)
		}
	}
	return nil
}
