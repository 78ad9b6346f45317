package sky

import (
	"testing"

	"github.com/nnchaudhuri/skyclock/render"
)

func TestColorAtEndpoints(t *testing.T) {
	seq := DefaultSequence()
	m := NewMapping(newYorkBoundaries(), seq)

	if got := m.ColorAt(0); !got.Equal(seq[IdxNightMorning]) {
		t.Errorf("ColorAt(0) = %v, want morning nautical first stop %v", got, seq[IdxNightMorning])
	}
	if got := m.ColorAt(1); !got.Equal(seq[IdxNightEvening]) {
		t.Errorf("ColorAt(1) = %v, want evening nautical last stop %v", got, seq[IdxNightEvening])
	}
}

// At an exact cumulative boundary the later segment's start must win,
// deterministically, at all four crossings
func TestColorAtBoundaryCrossings(t *testing.T) {
	seq := DefaultSequence()
	m := NewMapping(newYorkBoundaries(), seq)
	f := m.Fractions()

	p1 := f.MorningNautical
	p2 := p1 + f.MorningSunrise
	p3 := p2 + f.Midday
	p4 := p3 + f.EveningSunset

	tests := []struct {
		name     string
		progress float64
		want     int // sequence index of the expected exact color
	}{
		{"morning nautical to sunrise", p1, IdxNauticalDawn},
		{"morning sunrise to midday", p2, IdxSunrise},
		{"midday to evening sunset", p3, IdxAfternoon},
		{"evening sunset to nautical", p4, IdxDusk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ColorAt(tt.progress); !got.Equal(seq[tt.want]) {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.progress, got, seq[tt.want])
			}
		})
	}
}

func TestColorAtClampsProgress(t *testing.T) {
	seq := DefaultSequence()
	m := NewMapping(newYorkBoundaries(), seq)

	if got := m.ColorAt(-0.5); !got.Equal(m.ColorAt(0)) {
		t.Error("progress below 0 must clamp to 0")
	}
	if got := m.ColorAt(1.5); !got.Equal(m.ColorAt(1)) {
		t.Error("progress above 1 must clamp to 1")
	}
}

// A zero-duration segment renders as a single-point transition: no NaN,
// no panic, the neighboring segments own all progress values
func TestColorAtZeroDurationSegment(t *testing.T) {
	seq := DefaultSequence()
	b := newYorkBoundaries()
	b.CivilBegin = b.NauticalBegin // morning nautical collapses
	m := NewMapping(b, seq)

	got := m.ColorAt(0)
	if !got.Equal(seq[IdxNauticalDawn]) {
		t.Errorf("ColorAt(0) with collapsed first segment = %v, want %v", got, seq[IdxNauticalDawn])
	}
	// Sweep for NaN-free sampling
	for i := 0; i <= 100; i++ {
		m.ColorAt(float64(i) / 100)
	}
}

func TestNightMapping(t *testing.T) {
	seq := DefaultSequence()
	m := NightMapping(seq)
	if !m.NightOnly() {
		t.Fatal("expected night-only mapping")
	}
	for _, p := range []float64{0, 0.25, 0.5, 1} {
		if got := m.ColorAt(p); !got.Equal(seq.Night()) {
			t.Errorf("ColorAt(%v) = %v, want night tone", p, got)
		}
	}
}

func TestDegenerateBoundariesYieldNightMapping(t *testing.T) {
	seq := DefaultSequence()
	b := TimeBoundarySet{} // all zero instants, zero span
	m := NewMapping(b, seq)
	if !m.NightOnly() {
		t.Error("zero-span boundaries must degrade to the night mapping")
	}
}

func TestNewColorSequenceValidatesLength(t *testing.T) {
	if _, err := NewColorSequence(nil); err == nil {
		t.Error("empty sequence must be rejected")
	}
	if _, err := NewColorSequence(make([]render.RGB, 7)); err == nil {
		t.Error("short sequence must be rejected")
	}
	if _, err := NewColorSequence(make([]render.RGB, SequenceLen)); err != nil {
		t.Errorf("12-entry sequence rejected: %v", err)
	}
}
