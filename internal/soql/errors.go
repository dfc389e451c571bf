package soql

import "fmt"

// InvalidConfigError reports a malformed filter property value. It carries
// the offending property name so callers can attribute the problem to a
// specific input field.
type InvalidConfigError struct {
	Property string
	Message  string
	Err      error
}

func (e *InvalidConfigError) Error() string {
	return e.Message
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

// Error message formats for filter property problems.
const (
	errRangeFormat = "'%s' has invalid format '%s'. " +
		"Expected format is <VALUE_1> <TYPE_1>,<VALUE_2> <TYPE_2>... . " +
		"For example, '1 days, 2 hours, 30 minutes'"
	errInvalidUnitType   = "'%s' has invalid unit type '%s'"
	errInvalidUnitValue  = "'%s' has invalid unit value '%s'"
	errDuplicateUnitType = "'%s' has duplicate unit types '%s'"
	errInvalidDatetime   = "Invalid SObject '%s' value: '%s'. Value must be " +
		"in Salesforce Date Formats. For example, 2019-01-01T23:01:01Z"
)

func newInvalidConfigError(property, format string, args ...any) *InvalidConfigError {
	return &InvalidConfigError{
		Property: property,
		Message:  fmt.Sprintf(format, args...),
	}
}
