// Package face draws the clock face from a state snapshot: the sky
// ring, the sun and moon glyphs, the time indicator, and the status line
package face

import (
	"fmt"
	"math"
	"time"

	"github.com/nnchaudhuri/skyclock/dial"
	"github.com/nnchaudhuri/skyclock/engine"
	"github.com/nnchaudhuri/skyclock/ephemeris"
	"github.com/nnchaudhuri/skyclock/render"
	"github.com/nnchaudhuri/skyclock/terminal"
)

var (
	indicatorColor = render.RGB{R: 235, G: 235, B: 235}
	statusFg       = render.RGB{R: 200, G: 200, B: 205}
)

// Renderer owns the cell buffer and face geometry. Dimensions are
// recomputed on resize only; every Frame call reads them read-only
type Renderer struct {
	buf    *render.Buffer
	canvas *render.Canvas
	dims   dial.Dimensions
	bg     render.RGB
}

// New creates a renderer sized to the terminal
func New(width, height int) *Renderer {
	bg := render.RGB{R: 8, G: 9, B: 14}
	buf := render.NewBuffer(width, height, bg)
	r := &Renderer{
		buf:    buf,
		canvas: render.NewCanvas(buf),
		bg:     bg,
	}
	r.computeDims()
	return r
}

// Resize adjusts the buffer and refits the dial. The bottom cell row is
// reserved for the status line
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
	r.computeDims()
}

func (r *Renderer) computeDims() {
	pw, ph := r.canvas.Size()
	r.dims = dial.FitDimensions(pw, ph-2)
}

// Flush exports the frame to the terminal
func (r *Renderer) Flush(term terminal.Terminal) {
	r.buf.Flush(term)
}

// Frame redraws the whole face for the instant now
func (r *Renderer) Frame(now time.Time, snap *engine.Snapshot) {
	r.buf.Clear()

	offset := snap.Place.UTCOffsetHours
	current := dial.AngleAtLocation(now, offset)
	rotation := dial.RotationOffset(snap.Mode, current)

	r.drawRing(snap, rotation)
	r.drawIndicator(snap.Mode, current, rotation)
	r.drawSun(snap, rotation)
	r.drawMoon(now, snap, rotation)
	r.drawStatus(now, snap)
}

// skyColorAt returns the ring color for a local hour of the displayed
// day. Hours inside the daylight arc sample the phase mapping; the
// remainder samples the night arc gradient from dusk around to dawn
func skyColorAt(h float64, snap *engine.Snapshot) render.RGB {
	if !snap.HasBoundaries || snap.Mapping.NightOnly() {
		return snap.Sequence.Night()
	}

	b := snap.Boundaries
	t := snap.DayStart.Add(time.Duration(h * float64(time.Hour)))
	p := b.Progress(t)
	if p >= 0 && p <= 1 {
		return snap.Mapping.ColorAt(p)
	}

	nightLen := 24*time.Hour - b.Span()
	if nightLen <= 0 {
		return snap.Mapping.ColorAt(1)
	}
	var sinceDusk time.Duration
	if p > 1 {
		sinceDusk = t.Sub(b.NauticalEnd)
	} else {
		sinceDusk = t.Add(24 * time.Hour).Sub(b.NauticalEnd)
	}
	np := float64(sinceDusk) / float64(nightLen)
	return snap.Sequence.NightArc().Sample(np)
}

func (r *Renderer) drawRing(snap *engine.Snapshot, rotation float64) {
	d := r.dims
	r.canvas.FillRing(d.CenterX, d.CenterY, d.InnerRadius, d.OuterRadius,
		func(screenAngle float64) render.RGB {
			trueAngle := dial.WrapAngle(screenAngle - rotation)
			h := dial.WrapHours(12 + trueAngle/math.Pi*12)
			return skyColorAt(h, snap)
		})
}

// drawIndicator marks the current time: a fixed notch at the top in
// rotating mode (the arc moves underneath), a rotating hand otherwise
func (r *Renderer) drawIndicator(mode dial.Mode, current, rotation float64) {
	d := r.dims
	angle := dial.WrapAngle(current + rotation)
	r.canvas.RadialLine(d.CenterX, d.CenterY,
		d.OuterRadius+1, d.OuterRadius+3, angle, indicatorColor)
	if mode == dial.ModeFixed {
		r.canvas.RadialLine(d.CenterX, d.CenterY,
			d.InnerRadius, d.OuterRadius, angle, indicatorColor)
	}
}

func (r *Renderer) drawSun(snap *engine.Snapshot, rotation float64) {
	if !snap.HasBoundaries || snap.Mapping.NightOnly() {
		return
	}
	d := r.dims
	angle := dial.SunAngle(snap.Boundaries.Sunrise, snap.Boundaries.Sunset,
		snap.Place.UTCOffsetHours, rotation)
	x := d.CenterX + d.SunOrbit()*math.Sin(angle)
	y := d.CenterY - d.SunOrbit()*math.Cos(angle)
	r.canvas.FillCircle(x, y, d.GlyphRadius(), snap.Sequence.Sun())
	r.canvas.StrokeCircle(x, y, d.GlyphRadius(), snap.Sequence.Night())
}

func (r *Renderer) drawMoon(now time.Time, snap *engine.Snapshot, rotation float64) {
	d := r.dims

	var azimuth float64
	if !snap.Moon.Events.OK {
		azimuth = ephemeris.MoonPosition(now, snap.Place.Lat, snap.Place.Lng).Azimuth
	}
	angle := dial.MoonAngle(now, snap.Moon.Events, azimuth,
		snap.Place.UTCOffsetHours, rotation)

	x := d.CenterX + d.MoonOrbit()*math.Sin(angle)
	y := d.CenterY - d.MoonOrbit()*math.Cos(angle)
	radius := d.GlyphRadius()
	night := snap.Sequence.Night()

	// Base disc in the night tone, lit region over it, night outline
	r.canvas.FillCircle(x, y, radius, night)
	path := render.MoonSilhouette(snap.Moon.Illum.Phase, snap.Moon.Illum.Fraction,
		radius, render.MoonSilhouetteSteps)
	r.canvas.FillPath(x, y, path, snap.Sequence.Moon())
	r.canvas.StrokeCircle(x, y, radius, night)
}

func (r *Renderer) drawStatus(now time.Time, snap *engine.Snapshot) {
	offset := time.Duration(snap.Place.UTCOffsetHours * float64(time.Hour))
	local := now.UTC().Add(offset)

	status := fmt.Sprintf(" %s  %s  %s %d%%  [%s]",
		snap.Place.Name,
		local.Format("Mon Jan 2 15:04"),
		snap.Moon.Illum.PhaseName(),
		int(snap.Moon.Illum.Fraction*100+0.5),
		snap.Mode)
	if !snap.HasBoundaries {
		status += "  no ephemeris data"
	}
	if snap.Notice != "" {
		status += "  ! " + snap.Notice
	}
	r.buf.Text(0, r.buf.Height()-1, status, statusFg, r.bg)
}

var _ engine.Face = (*Renderer)(nil)
