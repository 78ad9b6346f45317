package sky

import (
	"math"
	"testing"
	"time"
)

func day(h, m int) time.Time {
	return time.Date(2026, time.March, 10, h, m, 0, 0, time.UTC)
}

func newYorkBoundaries() TimeBoundarySet {
	return TimeBoundarySet{
		NauticalBegin: day(5, 0),
		CivilBegin:    day(6, 0),
		Sunrise:       day(6, 30),
		Sunset:        day(19, 30),
		CivilEnd:      day(20, 0),
		NauticalEnd:   day(21, 0),
	}
}

func TestComputePhaseFractionsNewYork(t *testing.T) {
	f, ok := ComputePhaseFractions(newYorkBoundaries())
	if !ok {
		t.Fatal("expected valid fractions for a 16h span")
	}

	want := PhaseFractions{
		MorningNautical: 1.0 / 16,
		MorningSunrise:  0.5 / 16,
		Midday:          13.0 / 16,
		EveningSunset:   0.5 / 16,
		EveningNautical: 1.0 / 16,
	}
	got := [5]float64{f.MorningNautical, f.MorningSunrise, f.Midday, f.EveningSunset, f.EveningNautical}
	expect := [5]float64{want.MorningNautical, want.MorningSunrise, want.Midday, want.EveningSunset, want.EveningNautical}
	for i := range got {
		if math.Abs(got[i]-expect[i]) > 1e-12 {
			t.Errorf("fraction %d = %v, want %v", i, got[i], expect[i])
		}
	}
	if math.Abs(f.Sum()-1.0) > 1e-9 {
		t.Errorf("fractions sum to %v, want 1.0", f.Sum())
	}
}

func TestComputePhaseFractionsProperties(t *testing.T) {
	tests := []struct {
		name string
		b    TimeBoundarySet
	}{
		{"new york", newYorkBoundaries()},
		{"collapsed twilight", TimeBoundarySet{
			NauticalBegin: day(3, 0),
			CivilBegin:    day(3, 0),
			Sunrise:       day(3, 0),
			Sunset:        day(23, 0),
			CivilEnd:      day(23, 0),
			NauticalEnd:   day(23, 0),
		}},
		{"short winter day", TimeBoundarySet{
			NauticalBegin: day(7, 12),
			CivilBegin:    day(7, 55),
			Sunrise:       day(8, 31),
			Sunset:        day(15, 42),
			CivilEnd:      day(16, 18),
			NauticalEnd:   day(17, 1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.b.Validate(); err != nil {
				t.Fatalf("boundaries invalid: %v", err)
			}
			f, ok := ComputePhaseFractions(tt.b)
			if !ok {
				t.Fatal("expected non-degenerate fractions")
			}
			if math.Abs(f.Sum()-1.0) > 1e-9 {
				t.Errorf("sum = %v, want 1.0", f.Sum())
			}
			for i, v := range []float64{f.MorningNautical, f.MorningSunrise, f.Midday, f.EveningSunset, f.EveningNautical} {
				if v < 0 {
					t.Errorf("fraction %d = %v, want >= 0", i, v)
				}
			}
		})
	}
}

func TestComputePhaseFractionsDegenerate(t *testing.T) {
	instant := day(12, 0)
	b := TimeBoundarySet{
		NauticalBegin: instant,
		CivilBegin:    instant,
		Sunrise:       instant,
		Sunset:        instant,
		CivilEnd:      instant,
		NauticalEnd:   instant,
	}
	if _, ok := ComputePhaseFractions(b); ok {
		t.Error("zero span must report degenerate")
	}
}

func TestValidateRejectsDisorder(t *testing.T) {
	b := newYorkBoundaries()
	b.Sunrise = day(4, 0) // before nautical begin
	if err := b.Validate(); err == nil {
		t.Error("expected validation error for out-of-order sunrise")
	}
}

func TestProgress(t *testing.T) {
	b := newYorkBoundaries()
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"at nautical begin", day(5, 0), 0},
		{"at nautical end", day(21, 0), 1},
		{"at local noon-ish", day(13, 0), 0.5},
		{"before dawn", day(4, 0), -1.0 / 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Progress(tt.t); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Progress(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
