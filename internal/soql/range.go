package soql

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RangeValue maps each time unit to an integer magnitude. It is the parsed
// form of a compound range expression such as "1 days, 2 hours, 30 minutes".
// Each unit appears at most once; a duplicate in the source expression is a
// parse error, not a silent overwrite.
type RangeValue map[TimeUnit]int

// ParseRange parses a compound range expression into a RangeValue. A blank
// expression yields an empty RangeValue. Entries are comma-separated; each
// entry is an integer and a unit name separated by a single space. All
// returned errors are *InvalidConfigError carrying propertyName.
func ParseRange(propertyName, expression string) (RangeValue, error) {
	if strings.TrimSpace(expression) == "" {
		return RangeValue{}, nil
	}

	rangeValue := RangeValue{}
	for _, entry := range strings.Split(expression, ",") {
		// Split on the first space only so the unit token survives intact.
		tokens := strings.SplitN(strings.TrimSpace(entry), " ", 2)
		if len(tokens) < 2 {
			return nil, newInvalidConfigError(propertyName, errRangeFormat, propertyName, expression)
		}

		magnitude, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
		if err != nil {
			return nil, newInvalidConfigError(propertyName, errInvalidUnitValue, propertyName, tokens[0])
		}

		unit, err := ParseTimeUnit(tokens[1])
		if err != nil {
			return nil, newInvalidConfigError(propertyName, errInvalidUnitType, propertyName, tokens[1])
		}

		if _, exists := rangeValue[unit]; exists {
			return nil, newInvalidConfigError(propertyName, errDuplicateUnitType, propertyName, expression)
		}
		rangeValue[unit] = magnitude
	}
	return rangeValue, nil
}

// RangeEntry is a single unit/magnitude pair of a RangeValue.
type RangeEntry struct {
	Unit  TimeUnit
	Value int
}

// Entries returns the set units as pairs, largest unit first.
func (r RangeValue) Entries() []RangeEntry {
	var entries []RangeEntry
	for _, unit := range canonicalUnitOrder {
		if magnitude, ok := r[unit]; ok {
			entries = append(entries, RangeEntry{Unit: unit, Value: magnitude})
		}
	}
	return entries
}

// IsEmpty reports whether no units are set.
func (r RangeValue) IsEmpty() bool {
	return len(r) == 0
}

// String serializes the range value back to expression form, largest unit
// first. The output re-parses to an equal RangeValue.
func (r RangeValue) String() string {
	var entries []string
	for _, unit := range canonicalUnitOrder {
		if magnitude, ok := r[unit]; ok {
			entries = append(entries, fmt.Sprintf("%d %s", magnitude, unit))
		}
	}
	return strings.Join(entries, ", ")
}

// SubtractFrom returns t moved into the past by this range value. Calendar
// units use calendar arithmetic, clock units use fixed durations.
func (r RangeValue) SubtractFrom(t time.Time) time.Time {
	t = t.AddDate(-r[UnitYears], -r[UnitMonths], -(r[UnitWeeks]*7 + r[UnitDays]))
	clock := time.Duration(r[UnitHours])*time.Hour +
		time.Duration(r[UnitMinutes])*time.Minute +
		time.Duration(r[UnitSeconds])*time.Second
	return t.Add(-clock)
}
