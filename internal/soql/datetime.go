package soql

import (
	"strings"
	"time"
)

// sfDatetimeLayout is the SOQL datetime literal layout. Salesforce datetime
// literals are unquoted ISO-8601 values with a zone offset.
const sfDatetimeLayout = "2006-01-02T15:04:05Z07:00"

// ParseDatetime parses an ISO-8601 datetime with zone offset, e.g.
// "2019-03-12T11:29:52Z". A blank value yields nil without error. A parse
// failure is reported as *InvalidConfigError for propertyName.
func ParseDatetime(propertyName, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, &InvalidConfigError{
			Property: propertyName,
			Message:  formatDatetimeError(propertyName, value),
			Err:      err,
		}
	}
	return &t, nil
}

func formatDatetimeError(propertyName, value string) string {
	return newInvalidConfigError(propertyName, errInvalidDatetime, propertyName, value).Message
}

// FormatDatetime renders a time as a SOQL datetime literal in UTC.
func FormatDatetime(t time.Time) string {
	return t.UTC().Format(sfDatetimeLayout)
}
