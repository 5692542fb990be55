package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func iv(startHour, endHour int) Interval {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestInterval_Overlaps_Partial(t *testing.T) {
	a := iv(10, 12)
	b := iv(11, 13)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestInterval_Overlaps_Containment(t *testing.T) {
	outer := iv(9, 18)
	inner := iv(12, 13)

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestInterval_Overlaps_Identical(t *testing.T) {
	a := iv(10, 11)
	b := iv(10, 11)

	assert.True(t, a.Overlaps(b))
}

// Back-to-back appointments share only the boundary instant, which
// belongs to the later one. They must not conflict.
func TestInterval_Overlaps_Adjacent(t *testing.T) {
	first := iv(10, 11)
	second := iv(11, 12)

	assert.False(t, first.Overlaps(second))
	assert.False(t, second.Overlaps(first))
}

func TestInterval_Overlaps_Disjoint(t *testing.T) {
	morning := iv(8, 9)
	evening := iv(17, 18)

	assert.False(t, morning.Overlaps(evening))
	assert.False(t, evening.Overlaps(morning))
}

func TestInterval_Valid(t *testing.T) {
	assert.True(t, iv(10, 11).Valid())
	assert.False(t, iv(11, 10).Valid())

	same := iv(10, 10)
	assert.False(t, same.Valid())
}

func TestComputeEndTime(t *testing.T) {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	end, err := ComputeEndTime(start, 45)
	assert.NoError(t, err)
	assert.Equal(t, start.Add(45*time.Minute), end)
}

func TestComputeEndTime_InvalidDuration(t *testing.T) {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	_, err := ComputeEndTime(start, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeEndTime(start, -30)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
