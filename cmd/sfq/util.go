package main

import (
	"fmt"
	"os"
	"strings"
)

// expandPath expands a path with ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}

	return strings.Replace(path, "~", home, 1), nil
}

// newFormatError reports an unsupported --format value.
func newFormatError(format string) error {
	return fmt.Errorf("invalid format %q: must be one of: table, csv, json", format)
}

// parseFields converts a comma-separated field string to a slice of fields.
func parseFields(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	fields := strings.Split(value, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}
