package soql

import "time"

// FilterType discriminates the two filter variants.
type FilterType int

const (
	// FilterInterval bounds the window with explicit datetimes.
	FilterInterval FilterType = iota
	// FilterRange derives the window from an anchor time, a duration and
	// an offset into the past.
	FilterRange
)

// FilterDescriptor is a tagged variant describing the temporal filter of an
// SObject query: either an explicit interval or a relative range. Use
// IntervalFilter or RangeFilter to construct one; the type tag keeps the two
// modes mutually exclusive.
type FilterDescriptor struct {
	filterType FilterType

	// Interval bounds. A nil bound means unbounded on that side.
	start *time.Time
	end   *time.Time

	// Range window inputs.
	anchor   time.Time
	duration RangeValue
	offset   RangeValue
}

// IntervalFilter returns an interval-mode descriptor. Either bound may be
// nil for an open-ended interval.
func IntervalFilter(start, end *time.Time) FilterDescriptor {
	return FilterDescriptor{filterType: FilterInterval, start: start, end: end}
}

// RangeFilter returns a range-mode descriptor anchored at the given time.
// Nil duration or offset is treated as zero on every unit.
func RangeFilter(anchor time.Time, duration, offset RangeValue) FilterDescriptor {
	if duration == nil {
		duration = RangeValue{}
	}
	if offset == nil {
		offset = RangeValue{}
	}
	return FilterDescriptor{filterType: FilterRange, anchor: anchor, duration: duration, offset: offset}
}

// Type returns the active variant.
func (d FilterDescriptor) Type() FilterType {
	return d.filterType
}

// IsEmpty reports whether the descriptor filters nothing: an interval with
// both bounds absent, or a range with zero duration and offset. An empty
// descriptor produces a query without a WHERE clause.
func (d FilterDescriptor) IsEmpty() bool {
	if d.filterType == FilterInterval {
		return d.start == nil && d.end == nil
	}
	return d.duration.IsEmpty() && d.offset.IsEmpty()
}

// Window computes the effective bounds of the filter. The start bound is
// inclusive, the end bound exclusive. For interval mode an absent bound
// stays nil. For range mode the window is
// [anchor - offset - duration, anchor - offset).
func (d FilterDescriptor) Window() (start, end *time.Time) {
	if d.filterType == FilterInterval {
		return d.start, d.end
	}
	windowEnd := d.offset.SubtractFrom(d.anchor)
	windowStart := d.duration.SubtractFrom(windowEnd)
	return &windowStart, &windowEnd
}
