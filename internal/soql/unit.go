// Package soql provides functionality to construct SOQL queries for
// Salesforce SObject extraction, including temporal filter resolution.
package soql

import (
	"fmt"
	"strings"
)

// TimeUnit represents a calendar or clock granularity used in range filter
// expressions such as "1 days, 2 hours".
type TimeUnit int

const (
	// UnitSeconds is the seconds granularity.
	UnitSeconds TimeUnit = iota
	// UnitMinutes is the minutes granularity.
	UnitMinutes
	// UnitHours is the hours granularity.
	UnitHours
	// UnitDays is the days granularity.
	UnitDays
	// UnitWeeks is the weeks granularity.
	UnitWeeks
	// UnitMonths is the months granularity.
	UnitMonths
	// UnitYears is the years granularity.
	UnitYears
)

// unitNames maps each TimeUnit to its canonical expression token.
var unitNames = map[TimeUnit]string{
	UnitSeconds: "seconds",
	UnitMinutes: "minutes",
	UnitHours:   "hours",
	UnitDays:    "days",
	UnitWeeks:   "weeks",
	UnitMonths:  "months",
	UnitYears:   "years",
}

// canonicalUnitOrder lists all units largest first. Serialization and
// error reporting iterate in this order so output is deterministic.
var canonicalUnitOrder = []TimeUnit{
	UnitYears, UnitMonths, UnitWeeks, UnitDays, UnitHours, UnitMinutes, UnitSeconds,
}

func (u TimeUnit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// ParseTimeUnit converts an expression token to a TimeUnit. Matching is
// case-insensitive against the fixed set of unit names.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seconds":
		return UnitSeconds, nil
	case "minutes":
		return UnitMinutes, nil
	case "hours":
		return UnitHours, nil
	case "days":
		return UnitDays, nil
	case "weeks":
		return UnitWeeks, nil
	case "months":
		return UnitMonths, nil
	case "years":
		return UnitYears, nil
	default:
		return UnitSeconds, fmt.Errorf("unknown time unit: %s", s)
	}
}
