package source

import (
	"errors"
	"fmt"
	"strings"

	"sfq/internal/soql"
)

// Failure is one validation problem attributed to a config property.
type Failure struct {
	Property string
	Message  string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Property, f.Message)
}

// FailureCollector accumulates validation problems so every invalid field
// is reported at once instead of failing on the first.
type FailureCollector struct {
	failures []Failure
}

// AddFailure appends a problem for the given property.
func (fc *FailureCollector) AddFailure(property, message string) {
	fc.failures = append(fc.failures, Failure{Property: property, Message: message})
}

// Failures returns the collected problems in the order they were added.
func (fc *FailureCollector) Failures() []Failure {
	return fc.failures
}

// HasFailures reports whether any problem was collected.
func (fc *FailureCollector) HasFailures() bool {
	return len(fc.failures) > 0
}

// ValidateFilters checks all four filter properties, collecting every
// problem into the collector. It never stops at the first failure and never
// returns an error itself; a property holding an unresolved macro is
// skipped. Repeated invocation with the same inputs collects the same
// problems.
func (c *SourceConfig) ValidateFilters(collector *FailureCollector) {
	c.validateIntervalProperty(collector, PropertyDatetimeAfter, c.DatetimeAfter)
	c.validateIntervalProperty(collector, PropertyDatetimeBefore, c.DatetimeBefore)
	c.validateRangeProperty(collector, PropertyDuration, c.DurationRaw)
	c.validateRangeProperty(collector, PropertyOffset, c.OffsetRaw)
}

func (c *SourceConfig) validateIntervalProperty(collector *FailureCollector, propertyName, value string) {
	if c.ContainsMacro(propertyName) {
		return
	}
	if _, err := soql.ParseDatetime(propertyName, value); err != nil {
		collector.AddFailure(propertyName, failureMessage(err))
	}
}

func (c *SourceConfig) validateRangeProperty(collector *FailureCollector, propertyName, value string) {
	if c.ContainsMacro(propertyName) {
		return
	}

	rangeValue, err := soql.ParseRange(propertyName, value)
	if err != nil {
		collector.AddFailure(propertyName, failureMessage(err))
		return
	}
	if rangeValue.IsEmpty() {
		return
	}

	var invalid []string
	for _, entry := range rangeValue.Entries() {
		if entry.Value < RangeFilterMinValue {
			invalid = append(invalid, fmt.Sprintf("%d %s", entry.Value, entry.Unit))
		}
	}
	if len(invalid) > 0 {
		collector.AddFailure(propertyName, fmt.Sprintf(
			"Invalid SObject '%s' values: '%s'. Values must be '%d' or greater",
			propertyName, strings.Join(invalid, ", "), RangeFilterMinValue))
	}
}

// failureMessage extracts the user-facing message from a filter parse
// error.
func failureMessage(err error) string {
	var configErr *soql.InvalidConfigError
	if errors.As(err, &configErr) {
		return configErr.Message
	}
	return err.Error()
}
