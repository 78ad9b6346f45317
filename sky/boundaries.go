// Package sky maps astronomical time boundaries and a color sequence
// into continuous colors along the day/night cycle
package sky

import (
	"fmt"
	"time"
)

// TimeBoundarySet holds the six twilight boundaries of one calendar day
// at one location, in ascending order. At extreme latitudes adjacent
// boundaries may coincide, collapsing a segment to zero duration
type TimeBoundarySet struct {
	NauticalBegin time.Time
	CivilBegin    time.Time
	Sunrise       time.Time
	Sunset        time.Time
	CivilEnd      time.Time
	NauticalEnd   time.Time
}

// Validate checks that boundaries are monotonically non-decreasing
func (b TimeBoundarySet) Validate() error {
	seq := []struct {
		name string
		t    time.Time
	}{
		{"nautical begin", b.NauticalBegin},
		{"civil begin", b.CivilBegin},
		{"sunrise", b.Sunrise},
		{"sunset", b.Sunset},
		{"civil end", b.CivilEnd},
		{"nautical end", b.NauticalEnd},
	}
	for i := 1; i < len(seq); i++ {
		if seq[i].t.Before(seq[i-1].t) {
			return fmt.Errorf("boundary %s precedes %s", seq[i].name, seq[i-1].name)
		}
	}
	return nil
}

// Span returns the total daylight arc from nautical begin to nautical end
func (b TimeBoundarySet) Span() time.Duration {
	return b.NauticalEnd.Sub(b.NauticalBegin)
}

// Progress maps an instant to its fraction of the span. Not clamped;
// instants outside the span fall below 0 or above 1
func (b TimeBoundarySet) Progress(t time.Time) float64 {
	span := b.Span()
	if span <= 0 {
		return 0
	}
	return float64(t.Sub(b.NauticalBegin)) / float64(span)
}

// PhaseFractions are the five normalized segment durations of the
// daylight arc. All values are non-negative and sum to 1. Derived from a
// TimeBoundarySet, recomputed whenever it changes, never mutated
type PhaseFractions struct {
	MorningNautical float64 // nautical begin → civil begin
	MorningSunrise  float64 // civil begin → sunrise
	Midday          float64 // sunrise → sunset
	EveningSunset   float64 // sunset → civil end
	EveningNautical float64 // civil end → nautical end
}

// Sum returns the fraction total, 1.0 within floating tolerance for any
// non-degenerate boundary set
func (f PhaseFractions) Sum() float64 {
	return f.MorningNautical + f.MorningSunrise + f.Midday + f.EveningSunset + f.EveningNautical
}

// ComputePhaseFractions derives segment fractions from boundaries.
// ok is false for a zero or negative span, the degenerate case where the
// whole arc collapses to an instant; callers fall back to a night-only
// mapping rather than divide by zero
func ComputePhaseFractions(b TimeBoundarySet) (f PhaseFractions, ok bool) {
	span := float64(b.Span())
	if span <= 0 {
		return PhaseFractions{}, false
	}
	seg := func(from, to time.Time) float64 {
		d := float64(to.Sub(from))
		if d < 0 {
			return 0
		}
		return d / span
	}
	f = PhaseFractions{
		MorningNautical: seg(b.NauticalBegin, b.CivilBegin),
		MorningSunrise:  seg(b.CivilBegin, b.Sunrise),
		Midday:          seg(b.Sunrise, b.Sunset),
		EveningSunset:   seg(b.Sunset, b.CivilEnd),
		EveningNautical: seg(b.CivilEnd, b.NauticalEnd),
	}
	return f, true
}
