package ephemeris

import (
	"math"
	"time"

	"github.com/nnchaudhuri/skyclock/dial"
)

// Illumination describes the moon's appearance: Phase is the synodic
// position (0=new, 0.5=full) and Fraction the illuminated proportion of
// the visible disc
type Illumination struct {
	Phase    float64
	Fraction float64
}

// Waxing reports whether the moon is heading toward full
func (il Illumination) Waxing() bool {
	return il.Phase < 0.5
}

// PhaseName returns the conventional eight-phase name
func (il Illumination) PhaseName() string {
	waxing := il.Waxing()
	switch {
	case il.Fraction < 0.01:
		return "New Moon"
	case il.Fraction > 0.99:
		return "Full Moon"
	case il.Fraction >= 0.49 && il.Fraction <= 0.51:
		if waxing {
			return "First Quarter"
		}
		return "Third Quarter"
	case il.Fraction < 0.50:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}

// MoonIllumination computes phase and lit fraction from the elongation
// of the Moon from the Sun in ecliptic longitude
func MoonIllumination(t time.Time) Illumination {
	T := julianCenturies(t)
	elongation := normalizeAngle(moonEclipticLongitude(T) - sunEclipticLongitude(T))
	return Illumination{
		Phase:    elongation / 360.0,
		Fraction: (1 - math.Cos(degToRad(elongation))) / 2,
	}
}

// Horizontal is a topocentric direction. Azimuth is measured from south,
// positive westward, in (-π, π]; Altitude is radians above the horizon.
// The from-south convention keeps azimuth/π·12 a usable hour-angle
// stand-in for the dial's polar fallback
type Horizontal struct {
	Azimuth  float64
	Altitude float64
}

// MoonPosition returns the moon's instantaneous horizontal coordinates
// at the given geographic position (latitude north-positive, longitude
// east-positive, degrees)
func MoonPosition(t time.Time, lat, lng float64) Horizontal {
	T := julianCenturies(t)
	ra, dec := eclipticToEquatorial(moonEclipticLongitude(T), moonEclipticLatitude(T), T)

	haDeg := normalizeAngle(localSiderealDeg(t, lng) - ra)
	H := degToRad(haDeg)
	phi := degToRad(lat)
	delta := degToRad(dec)

	altitude := math.Asin(math.Sin(phi)*math.Sin(delta) + math.Cos(phi)*math.Cos(delta)*math.Cos(H))
	azimuth := math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(phi)-math.Tan(delta)*math.Cos(phi))

	return Horizontal{Azimuth: azimuth, Altitude: altitude}
}

// moonHorizonDeg is the altitude of the moon's center at rise/set,
// accounting for refraction and mean parallax
const moonHorizonDeg = 0.125

// MoonRiseSet scans the 24 hours following dayStart for the first
// horizon crossings of the moon's altitude, bisecting each bracketing
// interval down to the minute. Either event can be absent near the
// poles, where the moon may stay above or below the horizon all day
func MoonRiseSet(dayStart time.Time, lat, lng float64) dial.MoonEvents {
	const step = 10 * time.Minute

	altAt := func(t time.Time) float64 {
		return radToDeg(MoonPosition(t, lat, lng).Altitude) - moonHorizonDeg
	}

	var ev dial.MoonEvents
	var hasRise, hasSet bool

	prevT := dayStart
	prevAlt := altAt(prevT)
	for t := dayStart.Add(step); !t.After(dayStart.Add(24 * time.Hour)); t = t.Add(step) {
		alt := altAt(t)
		if !hasRise && prevAlt < 0 && alt >= 0 {
			ev.Rise = bisectCrossing(altAt, prevT, t)
			hasRise = true
		}
		if !hasSet && prevAlt > 0 && alt <= 0 {
			ev.Set = bisectCrossing(altAt, prevT, t)
			hasSet = true
		}
		if hasRise && hasSet {
			break
		}
		prevT, prevAlt = t, alt
	}

	ev.OK = hasRise && hasSet
	return ev
}

// bisectCrossing narrows a sign change of f to the minute
func bisectCrossing(f func(time.Time) float64, lo, hi time.Time) time.Time {
	rising := f(lo) < 0
	for hi.Sub(lo) > time.Minute {
		mid := lo.Add(hi.Sub(lo) / 2)
		above := f(mid) >= 0
		if above == rising {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo.Add(hi.Sub(lo) / 2).Round(time.Second)
}
