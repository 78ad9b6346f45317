// Package ephemeris supplies the astronomical inputs the dial consumes:
// twilight boundaries for the sun, and illumination, position and
// rise/set events for the moon. Solar events delegate to go-sunrise;
// lunar values come from truncated Meeus series, accurate to roughly a
// percent of illumination and a couple of minutes of position, which is
// well inside a pixel on the dial
package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// normalizeAngle wraps an angle in degrees to [0, 360)
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// julianCenturies returns Julian centuries since J2000.0
func julianCenturies(t time.Time) float64 {
	return (julian.TimeToJD(t.UTC()) - 2451545.0) / 36525.0
}

// sunEclipticLongitude computes the Sun's ecliptic longitude in degrees
func sunEclipticLongitude(T float64) float64 {
	// Mean longitude and mean anomaly
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := degToRad(normalizeAngle(M))

	// Equation of center
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	return normalizeAngle(L0 + C)
}

// moonFundamentals returns the Moon's mean longitude, mean elongation,
// mean anomaly and argument of latitude in degrees
func moonFundamentals(T float64) (L, D, Mp, F float64) {
	L = 218.3164477 + 481267.88123421*T - 0.0015786*T*T + T*T*T/538841 - T*T*T*T/65194000
	D = 297.8501921 + 445267.1114034*T - 0.0018819*T*T + T*T*T/545868 - T*T*T*T/113065000
	Mp = 134.9633964 + 477198.8675055*T + 0.0087414*T*T + T*T*T/69699 - T*T*T*T/14712000
	F = 93.2720950 + 483202.0175233*T - 0.0036539*T*T - T*T*T/3526000 + T*T*T*T/863310000
	return
}

// moonEclipticLongitude computes the Moon's ecliptic longitude in
// degrees using the dominant periodic terms
func moonEclipticLongitude(T float64) float64 {
	L, D, Mp, _ := moonFundamentals(T)
	Drad := degToRad(normalizeAngle(D))
	Mprad := degToRad(normalizeAngle(Mp))

	lambda := L +
		6.289*math.Sin(Mprad) +
		1.274*math.Sin(2*Drad-Mprad) +
		0.658*math.Sin(2*Drad) +
		0.214*math.Sin(2*Mprad) +
		0.110*math.Sin(Drad)

	return normalizeAngle(lambda)
}

// moonEclipticLatitude computes the Moon's ecliptic latitude in degrees
func moonEclipticLatitude(T float64) float64 {
	_, D, Mp, F := moonFundamentals(T)
	Frad := degToRad(normalizeAngle(F))
	Drad := degToRad(normalizeAngle(D))
	Mprad := degToRad(normalizeAngle(Mp))

	return 5.128*math.Sin(Frad) +
		0.2806*math.Sin(Mprad+Frad) +
		0.2777*math.Sin(Mprad-Frad) +
		0.1732*math.Sin(2*Drad-Frad)
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees
func meanObliquity(T float64) float64 {
	return 23.4392911 - 0.0130042*T - 0.00000016*T*T
}

// eclipticToEquatorial converts ecliptic longitude and latitude (degrees)
// to right ascension and declination (degrees)
func eclipticToEquatorial(lambda, beta, T float64) (ra, dec float64) {
	eps := degToRad(meanObliquity(T))
	lr := degToRad(lambda)
	br := degToRad(beta)

	ra = radToDeg(math.Atan2(
		math.Sin(lr)*math.Cos(eps)-math.Tan(br)*math.Sin(eps),
		math.Cos(lr),
	))
	dec = radToDeg(math.Asin(
		math.Sin(br)*math.Cos(eps) + math.Cos(br)*math.Sin(eps)*math.Sin(lr),
	))
	return normalizeAngle(ra), dec
}

// localSiderealDeg returns the local sidereal time in degrees at the
// given instant for an east-positive longitude
func localSiderealDeg(t time.Time, lng float64) float64 {
	d := julian.TimeToJD(t.UTC()) - 2451545.0
	gmst := 280.46061837 + 360.98564736629*d
	return normalizeAngle(gmst + lng)
}
