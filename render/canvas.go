package render

import (
	"math"
)

// PixelRune is the upper-half-block glyph used for pixel addressing:
// the cell foreground carries the upper pixel, the background the lower
const PixelRune = '▀'

// Canvas exposes a square-pixel grid over a cell Buffer, two vertical
// pixels per cell. Terminal cells are roughly twice as tall as wide, so
// half blocks come out near square
type Canvas struct {
	buf *Buffer
}

// NewCanvas wraps a buffer
func NewCanvas(buf *Buffer) *Canvas {
	return &Canvas{buf: buf}
}

// Size returns canvas dimensions in pixels
func (c *Canvas) Size() (width, height int) {
	return c.buf.Width(), c.buf.Height() * 2
}

// Pixel reads the color at x, y; black when out of bounds
func (c *Canvas) Pixel(x, y int) RGB {
	cell := c.buf.Cell(x, y/2)
	if y%2 == 0 {
		return cell.Fg
	}
	return cell.Bg
}

// SetPixel writes an opaque pixel
func (c *Canvas) SetPixel(x, y int, col RGB) {
	c.BlendPixel(x, y, col, 1)
}

// BlendPixel alpha-composites a pixel over the existing color
func (c *Canvas) BlendPixel(x, y int, col RGB, alpha float64) {
	cy := y / 2
	if x < 0 || x >= c.buf.Width() || cy < 0 || cy >= c.buf.Height() || y < 0 {
		return
	}
	cell := c.buf.Cell(x, cy)
	cell.Rune = PixelRune
	if y%2 == 0 {
		cell.Fg = Blend(cell.Fg, col, alpha)
	} else {
		cell.Bg = Blend(cell.Bg, col, alpha)
	}
	c.buf.SetCell(x, cy, cell)
}

// edgeCoverage approximates pixel coverage for a signed distance inside
// a boundary: full at >= 0.5, none at <= -0.5, linear between
func edgeCoverage(d float64) float64 {
	if d >= 0.5 {
		return 1
	}
	if d <= -0.5 {
		return 0
	}
	return d + 0.5
}

// ScreenAngle converts a pixel offset from center into the dial angle
// convention: 0 at top, ±π at bottom, positive clockwise
func ScreenAngle(dx, dy float64) float64 {
	return math.Atan2(dx, -dy)
}

// FillRing paints an annulus centered at cx, cy, coloring each pixel by
// its dial angle. This is the per-pixel equivalent of a conic gradient:
// surfaces without one fall back to angular segments, and a pixel is the
// smallest segment
func (c *Canvas) FillRing(cx, cy, inner, outer float64, colorAt func(angle float64) RGB) {
	x0 := int(math.Floor(cx - outer - 1))
	x1 := int(math.Ceil(cx + outer + 1))
	y0 := int(math.Floor(cy - outer - 1))
	y1 := int(math.Ceil(cy + outer + 1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Hypot(dx, dy)
			cov := edgeCoverage(math.Min(d-inner, outer-d))
			if cov <= 0 {
				continue
			}
			c.BlendPixel(x, y, colorAt(ScreenAngle(dx, dy)), cov)
		}
	}
}

// FillCircle paints a filled disc with antialiased rim
func (c *Canvas) FillCircle(cx, cy, r float64, col RGB) {
	x0 := int(math.Floor(cx - r - 1))
	x1 := int(math.Ceil(cx + r + 1))
	y0 := int(math.Floor(cy - r - 1))
	y1 := int(math.Ceil(cy + r + 1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			cov := edgeCoverage(r - d)
			if cov <= 0 {
				continue
			}
			c.BlendPixel(x, y, col, cov)
		}
	}
}

// StrokeCircle draws a one-pixel circle outline
func (c *Canvas) StrokeCircle(cx, cy, r float64, col RGB) {
	c.FillRing(cx, cy, r-0.5, r+0.5, func(float64) RGB { return col })
}

// RadialLine draws a line from radius r0 to r1 at the given dial angle
func (c *Canvas) RadialLine(cx, cy, r0, r1, angle float64, col RGB) {
	sin, cos := math.Sin(angle), math.Cos(angle)
	steps := int(math.Abs(r1-r0)*2) + 1
	for i := 0; i <= steps; i++ {
		r := r0 + (r1-r0)*float64(i)/float64(steps)
		x := int(math.Round(cx + r*sin))
		y := int(math.Round(cy - r*cos))
		c.SetPixel(x, y, col)
	}
}
