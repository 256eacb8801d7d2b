package calendar

import "time"

// Range represents a half-open span of consecutive days: Start is occupied,
// End is not. A Range with Start >= End spans no days. Every component that
// reasons about which days a reservation occupies goes through this type.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange returns a Range over day-truncated bounds.
func NewRange(start, end time.Time) Range {
	return Range{Start: DayOf(start), End: DayOf(end)}
}

// Each walks the days of the range in order, start inclusive, end exclusive.
// The walk stops early when yield returns false. Each can be called any
// number of times; every call restarts from Start.
func (r Range) Each(yield func(day time.Time) bool) {
	for day := r.Start; day.Before(r.End); day = day.AddDate(0, 0, 1) {
		if !yield(day) {
			return
		}
	}
}

// Days materializes the range; nil for an empty range.
func (r Range) Days() []time.Time {
	var result []time.Time
	r.Each(func(day time.Time) bool {
		result = append(result, day)
		return true
	})
	return result
}

// Size returns the number of days the range spans.
func (r Range) Size() int {
	if !r.Start.Before(r.End) {
		return 0
	}
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}

// IsEmpty returns true when the range spans no days.
func (r Range) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

// Contains returns true when day falls within the half-open range.
func (r Range) Contains(day time.Time) bool {
	day = DayOf(day)
	return !day.Before(r.Start) && day.Before(r.End)
}

// String renders the range bounds.
func (r Range) String() string {
	return FormatDay(r.Start) + " .. " + FormatDay(r.End)
}
