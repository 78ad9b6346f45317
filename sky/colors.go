package sky

import (
	"fmt"

	"github.com/nnchaudhuri/skyclock/render"
)

// SequenceLen is the fixed color sequence length: sun, moon, and ten sky
// gradient anchors
const SequenceLen = 12

// Sequence indices. Anchors 2..11 run chronologically around the day
const (
	IdxSun = iota
	IdxMoon
	IdxNightMorning // night tone before dawn
	IdxNauticalDawn
	IdxCivilDawn
	IdxSunrise
	IdxMorning
	IdxNoon
	IdxAfternoon
	IdxSunset
	IdxDusk
	IdxNightEvening // night tone after dusk
)

// ColorSequence is the full user-configurable palette: index 0 the sun
// fill, 1 the moon fill, 2..11 the sky gradient anchors. Replaced whole,
// never mutated in place
type ColorSequence [SequenceLen]render.RGB

// NewColorSequence validates length before acceptance
func NewColorSequence(colors []render.RGB) (ColorSequence, error) {
	var s ColorSequence
	if len(colors) != SequenceLen {
		return s, fmt.Errorf("color sequence needs %d entries, got %d", SequenceLen, len(colors))
	}
	copy(s[:], colors)
	return s, nil
}

// DefaultSequence is the built-in palette
func DefaultSequence() ColorSequence {
	return ColorSequence{
		{R: 255, G: 201, B: 71},  // sun
		{R: 226, G: 223, B: 210}, // moon
		{R: 10, G: 12, B: 32},    // night, morning side
		{R: 28, G: 36, B: 72},    // nautical dawn
		{R: 86, G: 66, B: 114},   // civil dawn
		{R: 236, G: 129, B: 90},  // sunrise
		{R: 135, G: 186, B: 222}, // morning
		{R: 116, G: 173, B: 226}, // noon
		{R: 130, G: 180, B: 218}, // afternoon
		{R: 226, G: 110, B: 68},  // sunset
		{R: 74, G: 52, B: 100},   // dusk
		{R: 12, G: 13, B: 34},    // night, evening side
	}
}

// Sun returns the sun fill color
func (s ColorSequence) Sun() render.RGB { return s[IdxSun] }

// Moon returns the moon fill color
func (s ColorSequence) Moon() render.RGB { return s[IdxMoon] }

// Night returns the tone used for the night arc and moon shadow, the
// morning-side night anchor
func (s ColorSequence) Night() render.RGB { return s[IdxNightMorning] }

// Palettes are the five per-segment gradients expanded from a color
// sequence. Adjacent palettes share their boundary anchor so the ring is
// continuous across segment crossings. Derived and cached: regenerated
// only when the sequence changes, read-only afterward
type Palettes struct {
	MorningNautical render.Gradient
	MorningSunrise  render.Gradient
	Midday          render.Gradient
	EveningSunset   render.Gradient
	EveningNautical render.Gradient
}

// Palettes expands the sequence into per-segment gradients
func (s ColorSequence) Palettes() Palettes {
	return Palettes{
		MorningNautical: render.NewGradient(s[IdxNightMorning], s[IdxNauticalDawn]),
		MorningSunrise:  render.NewGradient(s[IdxNauticalDawn], s[IdxCivilDawn], s[IdxSunrise]),
		Midday:          render.NewGradient(s[IdxSunrise], s[IdxMorning], s[IdxNoon], s[IdxAfternoon]),
		EveningSunset:   render.NewGradient(s[IdxAfternoon], s[IdxSunset], s[IdxDusk]),
		EveningNautical: render.NewGradient(s[IdxDusk], s[IdxNightEvening]),
	}
}

// NightArc returns the gradient spanning the night portion of the ring,
// from the evening night anchor back around to the morning one
func (s ColorSequence) NightArc() render.Gradient {
	return render.NewGradient(s[IdxNightEvening], s[IdxNightMorning])
}
