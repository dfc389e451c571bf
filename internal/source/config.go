// Package source contains the batch-source configuration: raw temporal
// filter parameters, their validation, and SOQL query resolution against
// SObject metadata.
package source

import (
	"regexp"

	"sfq/internal/soql"
)

// Filter property names, used to attribute validation failures to the
// input field a user supplied them under.
const (
	PropertyDatetimeAfter  = "datetimeAfter"
	PropertyDatetimeBefore = "datetimeBefore"
	PropertyDuration       = "duration"
	PropertyOffset         = "offset"
)

// RangeFilterMinValue is the smallest magnitude accepted in duration and
// offset range values.
const RangeFilterMinValue = 0

// macroPattern matches host-framework macro placeholders such as
// ${runtime:start}. A property holding a macro is not yet resolvable and is
// exempt from validation.
var macroPattern = regexp.MustCompile(`\$\{[^}]*\}`)

// SourceConfig holds the raw, possibly-unset, possibly-macro filter
// properties of a batch source. Values are supplied once at configuration
// time and never mutated.
type SourceConfig struct {
	// DatetimeAfter selects records modified at or after this ISO-8601
	// datetime. Example: 2019-03-12T11:29:52Z.
	DatetimeAfter string `yaml:"datetimeAfter,omitempty"`

	// DatetimeBefore selects records modified before this ISO-8601
	// datetime.
	DatetimeBefore string `yaml:"datetimeBefore,omitempty"`

	// DurationRaw is the relative window size, e.g. "1 days, 2 hours".
	DurationRaw string `yaml:"duration,omitempty"`

	// OffsetRaw shifts the relative window into the past, same format as
	// DurationRaw.
	OffsetRaw string `yaml:"offset,omitempty"`
}

// Duration parses the duration property into a RangeValue.
func (c *SourceConfig) Duration() (soql.RangeValue, error) {
	return soql.ParseRange(PropertyDuration, c.DurationRaw)
}

// Offset parses the offset property into a RangeValue.
func (c *SourceConfig) Offset() (soql.RangeValue, error) {
	return soql.ParseRange(PropertyOffset, c.OffsetRaw)
}

// ContainsMacro reports whether the raw value of the given property holds
// an unresolved macro placeholder.
func (c *SourceConfig) ContainsMacro(propertyName string) bool {
	return macroPattern.MatchString(c.rawValue(propertyName))
}

func (c *SourceConfig) rawValue(propertyName string) string {
	switch propertyName {
	case PropertyDatetimeAfter:
		return c.DatetimeAfter
	case PropertyDatetimeBefore:
		return c.DatetimeBefore
	case PropertyDuration:
		return c.DurationRaw
	case PropertyOffset:
		return c.OffsetRaw
	default:
		return ""
	}
}
