package ephemeris

import (
	"testing"
	"time"
)

func TestMoonIlluminationKnownPhases(t *testing.T) {
	tests := []struct {
		name        string
		when        time.Time
		checkWaxing bool
		wantWaxing  bool
		minFraction float64
		maxFraction float64
	}{
		{
			// New moon 2000-01-06 18:14 UTC; the phase sign flips within
			// series accuracy of the exact instant, so only the fraction
			// is asserted
			name:        "new moon",
			when:        time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC),
			minFraction: 0,
			maxFraction: 0.05,
		},
		{
			// Full moon 2000-01-21 04:40 UTC
			name:        "full moon",
			when:        time.Date(2000, 1, 21, 4, 40, 0, 0, time.UTC),
			minFraction: 0.95,
			maxFraction: 1,
		},
		{
			// First quarter 2000-01-14 13:34 UTC
			name:        "first quarter",
			when:        time.Date(2000, 1, 14, 13, 34, 0, 0, time.UTC),
			checkWaxing: true,
			wantWaxing:  true,
			minFraction: 0.4,
			maxFraction: 0.6,
		},
		{
			// Third quarter 2000-01-28 07:57 UTC
			name:        "third quarter",
			when:        time.Date(2000, 1, 28, 7, 57, 0, 0, time.UTC),
			checkWaxing: true,
			wantWaxing:  false,
			minFraction: 0.4,
			maxFraction: 0.6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			il := MoonIllumination(tt.when)
			if il.Fraction < tt.minFraction || il.Fraction > tt.maxFraction {
				t.Errorf("fraction = %v, want in [%v, %v]", il.Fraction, tt.minFraction, tt.maxFraction)
			}
			if il.Phase < 0 || il.Phase >= 1 {
				t.Errorf("phase = %v, want in [0, 1)", il.Phase)
			}
			if tt.checkWaxing && il.Waxing() != tt.wantWaxing {
				t.Errorf("waxing = %v, want %v", il.Waxing(), tt.wantWaxing)
			}
		})
	}
}

func TestPhaseName(t *testing.T) {
	tests := []struct {
		il   Illumination
		want string
	}{
		{Illumination{Phase: 0, Fraction: 0.005}, "New Moon"},
		{Illumination{Phase: 0.5, Fraction: 0.995}, "Full Moon"},
		{Illumination{Phase: 0.25, Fraction: 0.5}, "First Quarter"},
		{Illumination{Phase: 0.75, Fraction: 0.5}, "Third Quarter"},
		{Illumination{Phase: 0.12, Fraction: 0.2}, "Waxing Crescent"},
		{Illumination{Phase: 0.38, Fraction: 0.8}, "Waxing Gibbous"},
		{Illumination{Phase: 0.62, Fraction: 0.8}, "Waning Gibbous"},
		{Illumination{Phase: 0.88, Fraction: 0.2}, "Waning Crescent"},
	}
	for _, tt := range tests {
		if got := tt.il.PhaseName(); got != tt.want {
			t.Errorf("PhaseName(phase=%v, fraction=%v) = %q, want %q",
				tt.il.Phase, tt.il.Fraction, got, tt.want)
		}
	}
}

func TestMoonPositionBounds(t *testing.T) {
	// Sweep a lunar month; coordinates must stay in range everywhere
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30*4; i++ {
		when := start.Add(time.Duration(i) * 6 * time.Hour)
		pos := MoonPosition(when, 40.71, -74.0)
		if pos.Altitude < -1.6 || pos.Altitude > 1.6 {
			t.Fatalf("altitude out of range at %v: %v", when, pos.Altitude)
		}
		if pos.Azimuth < -3.15 || pos.Azimuth > 3.15 {
			t.Fatalf("azimuth out of range at %v: %v", when, pos.Azimuth)
		}
	}
}

func TestMoonRiseSetMidLatitude(t *testing.T) {
	// Local midnight in New York on the March 2026 full moon: moonset in
	// the morning and moonrise in the evening, both well inside the day
	dayStart := time.Date(2026, 3, 3, 5, 0, 0, 0, time.UTC)
	ev := MoonRiseSet(dayStart, 40.71, -74.0)
	if !ev.OK {
		t.Fatal("mid-latitude day must have both rise and set")
	}
	dayEnd := dayStart.Add(24 * time.Hour)
	for _, e := range []struct {
		name string
		at   time.Time
	}{{"rise", ev.Rise}, {"set", ev.Set}} {
		if e.at.Before(dayStart) || e.at.After(dayEnd) {
			t.Errorf("%s = %v, outside [%v, %v]", e.name, e.at, dayStart, dayEnd)
		}
	}

	// Altitude signs on either side of each crossing
	alt := func(at time.Time) float64 {
		return MoonPosition(at, 40.71, -74.0).Altitude
	}
	if alt(ev.Rise.Add(-30*time.Minute)) >= alt(ev.Rise.Add(30*time.Minute)) {
		t.Error("altitude must increase through moonrise")
	}
	if alt(ev.Set.Add(-30*time.Minute)) <= alt(ev.Set.Add(30*time.Minute)) {
		t.Error("altitude must decrease through moonset")
	}
}
