package domain

import "time"

// TimeRange is a half-open time interval [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange builds a TimeRange from start and end instants, applying the
// overnight rule: an end that does not come after its start (same calendar
// day) is moved to the same clock time on the following day.
// Normalization happens here, before any comparison or persistence.
func NewTimeRange(start, end time.Time) TimeRange {
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return TimeRange{Start: start, End: end}
}

// Overlaps reports whether two half-open intervals intersect.
// Strict inequalities: a booking ending exactly when another begins
// is not a conflict.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// StartsBefore reports whether the interval starts strictly before t
func (r TimeRange) StartsBefore(t time.Time) bool {
	return r.Start.Before(t)
}

// Duration returns the length of the interval
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
