package sky

import (
	"github.com/nnchaudhuri/skyclock/render"
)

// Mapping converts a global progress value across the daylight arc into
// colors. Cumulative segment boundaries are precomputed once so ColorAt
// is O(1); a render pass samples it hundreds of times per frame
type Mapping struct {
	fractions PhaseFractions
	// cumulative sums; p5 is implicitly 1
	p1, p2, p3, p4 float64
	pal            Palettes
	nightOnly      bool
	night          render.RGB
}

// NewMapping precomputes the progress mapping for one boundary set and
// sequence. A degenerate boundary set (zero span) yields a night-only
// mapping
func NewMapping(b TimeBoundarySet, seq ColorSequence) Mapping {
	f, ok := ComputePhaseFractions(b)
	if !ok {
		return NightMapping(seq)
	}
	return Mapping{
		fractions: f,
		p1:        f.MorningNautical,
		p2:        f.MorningNautical + f.MorningSunrise,
		p3:        f.MorningNautical + f.MorningSunrise + f.Midday,
		p4:        f.MorningNautical + f.MorningSunrise + f.Midday + f.EveningSunset,
		pal:       seq.Palettes(),
		night:     seq.Night(),
	}
}

// NightMapping renders every progress value as the night tone; used
// before any ephemeris data arrives and for polar night
func NightMapping(seq ColorSequence) Mapping {
	return Mapping{nightOnly: true, night: seq.Night()}
}

// NightOnly reports whether the mapping is the degenerate night dial
func (m Mapping) NightOnly() bool { return m.nightOnly }

// Fractions returns the phase fractions behind the mapping
func (m Mapping) Fractions() PhaseFractions { return m.fractions }

// ColorAt samples the color for progress in [0,1] across the daylight
// arc. Progress is clamped. Segment lookup uses strict comparison
// against the cumulative sums, so at an exact boundary the later
// segment's start wins; a zero-duration segment therefore never catches
// any progress value and renders as a single-point transition
func (m Mapping) ColorAt(progress float64) render.RGB {
	if m.nightOnly {
		return m.night
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	switch {
	case progress < m.p1:
		return m.pal.MorningNautical.Sample(progress / m.fractions.MorningNautical)
	case progress < m.p2:
		return m.pal.MorningSunrise.Sample((progress - m.p1) / m.fractions.MorningSunrise)
	case progress < m.p3:
		return m.pal.Midday.Sample((progress - m.p2) / m.fractions.Midday)
	case progress < m.p4:
		return m.pal.EveningSunset.Sample((progress - m.p3) / m.fractions.EveningSunset)
	default:
		if m.fractions.EveningNautical <= 0 {
			return m.pal.EveningNautical.Last()
		}
		return m.pal.EveningNautical.Sample((progress - m.p4) / m.fractions.EveningNautical)
	}
}
