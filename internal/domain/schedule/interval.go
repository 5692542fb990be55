package schedule

import "time"

// ===============================
// Interval Math
// ===============================

// Interval is a half-open time range [Start, End): the start instant is
// included, the end instant is not. Back-to-back appointments therefore
// never overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share any instant.
// The single inequality pair covers every overlap shape: partial from
// either side and full containment.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Valid reports whether the interval is strictly ordered.
func (a Interval) Valid() bool {
	return a.Start.Before(a.End)
}

// ComputeEndTime derives an appointment end from its start and the
// service duration.
func ComputeEndTime(start time.Time, durationMin int) (time.Time, error) {
	if durationMin <= 0 {
		return time.Time{}, ErrInvalidDuration
	}
	return start.Add(time.Duration(durationMin) * time.Minute), nil
}
