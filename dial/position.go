package dial

import (
	"math"
	"time"
)

// Orbit constants as fractions of ring width. The sun rides near the
// outer edge, the moon near the inner, and with an 0.18 glyph radius the
// two footprints cannot overlap
const (
	orbitInset      = 0.28
	glyphRadiusFrac = 0.18
)

// Dimensions describe the face geometry in pixels. Recomputed on resize,
// read-only during a frame
type Dimensions struct {
	CenterX     float64
	CenterY     float64
	OuterRadius float64
	InnerRadius float64
}

// FitDimensions centers the largest dial that fits a pixel area, keeping
// a small margin
func FitDimensions(pixelW, pixelH int) Dimensions {
	cx := float64(pixelW) / 2
	cy := float64(pixelH) / 2
	outer := math.Min(cx, cy) - 2
	if outer < 4 {
		outer = 4
	}
	return Dimensions{
		CenterX:     cx,
		CenterY:     cy,
		OuterRadius: outer,
		InnerRadius: outer * 0.55,
	}
}

// RingWidth is the radial thickness of the colored arc
func (d Dimensions) RingWidth() float64 {
	return d.OuterRadius - d.InnerRadius
}

// SunOrbit is the sun glyph's orbit radius
func (d Dimensions) SunOrbit() float64 {
	return d.OuterRadius - orbitInset*d.RingWidth()
}

// MoonOrbit is the moon glyph's orbit radius
func (d Dimensions) MoonOrbit() float64 {
	return d.InnerRadius + orbitInset*d.RingWidth()
}

// GlyphRadius is the radius of the sun and moon glyphs
func (d Dimensions) GlyphRadius() float64 {
	return glyphRadiusFrac * d.RingWidth()
}

// SunAngle places the sun at its estimated solar noon: the midpoint of
// sunrise and sunset local hours. This approximates true solar noon but
// stays consistent with the arc the dial draws from the same boundaries
func SunAngle(sunrise, sunset time.Time, utcOffsetHours, rotation float64) float64 {
	rh := HoursAtLocation(sunrise, utcOffsetHours)
	sh := HoursAtLocation(sunset, utcOffsetHours)
	if sh < rh {
		sh += 24
	}
	noon := WrapHours((rh + sh) / 2)
	return WrapAngle(AngleForHours(noon) + rotation)
}

// MoonEvents carries the day's moon rise and set instants when they
// exist. Polar days may lack either
type MoonEvents struct {
	Rise, Set time.Time
	OK        bool // both events present
}

// MoonHourAngle computes the moon's hour angle in hours at the given
// instant. With rise and set available, transit is their local-hour
// midpoint (set shifted +24h for an overnight pass) and the hour angle is
// the signed distance from transit, wrapped to [-12,12). Without them the
// azimuth fallback azimuth/π·12 is used, a coarse approximation that is
// only good near transit but the best available in polar conditions
func MoonHourAngle(now time.Time, ev MoonEvents, azimuth, utcOffsetHours float64) float64 {
	if !ev.OK {
		return azimuth / math.Pi * 12
	}
	rh := HoursAtLocation(ev.Rise, utcOffsetHours)
	sh := HoursAtLocation(ev.Set, utcOffsetHours)
	if sh < rh {
		sh += 24
	}
	transit := WrapHours((rh + sh) / 2)
	diff := HoursAtLocation(now, utcOffsetHours) - transit
	for diff < -12 {
		diff += 24
	}
	for diff >= 12 {
		diff -= 24
	}
	return diff
}

// MoonAngle places the moon on the dial: the clock hour is the local
// hour minus the hour angle, wrapped to [0,24), projected noon-at-top
func MoonAngle(now time.Time, ev MoonEvents, azimuth, utcOffsetHours, rotation float64) float64 {
	ha := MoonHourAngle(now, ev, azimuth, utcOffsetHours)
	clockHour := WrapHours(HoursAtLocation(now, utcOffsetHours) - ha)
	return WrapAngle(AngleForHours(clockHour) + rotation)
}
