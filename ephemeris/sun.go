package ephemeris

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/nnchaudhuri/skyclock/sky"
)

// Solar depression angles for the twilight bands, degrees below horizon
const (
	civilDepression    = -6.0
	nauticalDepression = -12.0
)

// SunBoundaries computes the six twilight boundaries for the calendar
// day of date (its own Y/M/D) at the given coordinates.
//
// Near the poles any band can be degenerate: a crossing pair that never
// happens is replaced by the full day when the sun stays above that
// depression, or collapsed to an instant at approximate solar noon when
// it stays below. A final forward clamp keeps the six instants
// monotonic, so zero-duration segments are possible and the polar-night
// result has zero span
func SunBoundaries(date time.Time, lat, lng float64) sky.TimeBoundarySet {
	y, m, d := date.Date()

	// Approximate local solar noon: 12:00 UTC shifted by longitude
	refNoon := time.Date(y, m, d, 12, 0, 0, 0, time.UTC).
		Add(-time.Duration(lng / 15 * float64(time.Hour)))

	resolve := func(start, end time.Time, depression float64) (time.Time, time.Time) {
		if !start.IsZero() && !end.IsZero() {
			return start, end
		}
		if sunrise.Elevation(lat, lng, refNoon) > depression {
			// Sun never drops to this depression: band spans the day
			return refNoon.Add(-12 * time.Hour), refNoon.Add(12 * time.Hour)
		}
		// Sun never reaches this depression: band collapses
		return refNoon, refNoon
	}

	nbRaw, neRaw := sunrise.TimeOfElevation(lat, lng, nauticalDepression, y, m, d)
	cbRaw, ceRaw := sunrise.TimeOfElevation(lat, lng, civilDepression, y, m, d)
	srRaw, ssRaw := sunrise.SunriseSunset(lat, lng, y, m, d)

	nb, ne := resolve(nbRaw, neRaw, nauticalDepression)
	cb, ce := resolve(cbRaw, ceRaw, civilDepression)
	sr, ss := resolve(srRaw, ssRaw, 0)

	b := sky.TimeBoundarySet{
		NauticalBegin: nb,
		CivilBegin:    laterOf(cb, nb),
	}
	b.Sunrise = laterOf(sr, b.CivilBegin)
	b.Sunset = laterOf(ss, b.Sunrise)
	b.CivilEnd = laterOf(ce, b.Sunset)
	b.NauticalEnd = laterOf(ne, b.CivilEnd)
	return b
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
