// Package dial projects times and celestial events onto clock angles.
// The dial convention puts local noon at the top (angle 0) and local
// midnight at the bottom (±π), angles growing clockwise
package dial

import (
	"math"
	"time"
)

// Mode selects how the face is oriented
type Mode uint8

const (
	// ModeRotating pins the current instant to the visual top; the
	// colored arc rotates underneath
	ModeRotating Mode = iota
	// ModeFixed keeps noon at the top; an indicator rotates instead
	ModeFixed
)

// String names the mode for the status line
func (m Mode) String() string {
	if m == ModeFixed {
		return "fixed"
	}
	return "rotating"
}

// HoursAtLocation converts an absolute instant to fractional local hours
// in [0,24) by adding the UTC offset to the UTC hours-of-day. Wrapping is
// repeated addition of 24 rather than a modulo, which also covers offsets
// beyond ±24
func HoursAtLocation(t time.Time, utcOffsetHours float64) float64 {
	u := t.UTC()
	h := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600
	h += utcOffsetHours
	return WrapHours(h)
}

// WrapHours folds fractional hours into [0,24)
func WrapHours(h float64) float64 {
	for h < 0 {
		h += 24
	}
	for h >= 24 {
		h -= 24
	}
	return h
}

// AngleForHours maps local hours to dial angle: 12h → 0, 0h → −π
func AngleForHours(h float64) float64 {
	return (h - 12) / 12 * math.Pi
}

// AngleAtLocation projects an instant onto the dial
func AngleAtLocation(t time.Time, utcOffsetHours float64) float64 {
	return AngleForHours(HoursAtLocation(t, utcOffsetHours))
}

// RotationOffset returns the display transform for the mode: rotating
// mode cancels the current angle so "now" renders at the top, fixed mode
// leaves the dial alone
func RotationOffset(mode Mode, currentAngle float64) float64 {
	if mode == ModeRotating {
		return -currentAngle
	}
	return 0
}

// WrapAngle folds an angle into [-π, π)
func WrapAngle(a float64) float64 {
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	for a >= math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
