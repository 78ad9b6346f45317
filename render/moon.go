package render

import (
	"math"
	"sort"
)

// Point is a position in local path coordinates, y growing downward
type Point struct {
	X, Y float64
}

// MoonSilhouetteSteps is the default terminator sampling count; enough
// for visual smoothness at glyph sizes, higher trades cost for fidelity
const MoonSilhouetteSteps = 60

// MoonSilhouette constructs the closed outline of the lit region of a
// moon disc of the given radius, centered on the origin.
//
// phase is the synodic position (0=new, 0.5=full) and fraction the
// illuminated proportion of the disc. The terminator is the cross
// section of a lit sphere, an ellipse with x offset radius*(1-2*fraction);
// waxing (phase < 0.5) lights the right half-plane, waning mirrors the
// offset sign to light the left. This is a display approximation, not an
// exact projection.
//
// Returns nil below fraction 0.01 (dark disc) and a full-disc polygon
// above 0.99
func MoonSilhouette(phase, fraction, radius float64, steps int) []Point {
	if steps < 2 {
		steps = MoonSilhouetteSteps
	}
	if fraction < 0.01 {
		return nil
	}
	if fraction > 0.99 {
		path := make([]Point, 0, steps)
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			path = append(path, Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
		}
		return path
	}

	sign := 1.0
	if phase >= 0.5 {
		sign = -1.0
	}
	terminatorX := radius * (1 - 2*fraction)

	path := make([]Point, 0, steps+steps/2+2)

	// Limb arc on the lit side, top to bottom
	half := steps / 2
	for i := 0; i <= half; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/float64(half)
		path = append(path, Point{X: sign * radius * math.Cos(a), Y: radius * math.Sin(a)})
	}

	// Terminator curve back from bottom to top
	for i := 1; i < steps; i++ {
		y := radius - 2*radius*float64(i)/float64(steps)
		t := y / radius
		x := sign * terminatorX * math.Sqrt(1-t*t)
		path = append(path, Point{X: x, Y: y})
	}

	return path
}

// PathContains reports whether the closed path encloses the local point
// using even-odd ray casting
func PathContains(path []Point, x, y float64) bool {
	inside := false
	n := len(path)
	for i := 0; i < n; i++ {
		a := path[i]
		b := path[(i+1)%n]
		if (a.Y <= y) == (b.Y <= y) {
			continue
		}
		ix := a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if ix > x {
			inside = !inside
		}
	}
	return inside
}

// FillPath rasterizes a closed path onto the canvas with even-odd
// scanline filling, translated so the path origin lands at cx, cy
func (c *Canvas) FillPath(cx, cy float64, path []Point, col RGB) {
	if len(path) < 3 {
		return
	}

	minY, maxY := path[0].Y, path[0].Y
	for _, p := range path[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	var xs []float64
	n := len(path)
	for y := int(math.Floor(cy + minY)); y <= int(math.Ceil(cy+maxY)); y++ {
		ly := float64(y) - cy
		xs = xs[:0]
		for i := 0; i < n; i++ {
			a := path[i]
			b := path[(i+1)%n]
			if (a.Y <= ly) == (b.Y <= ly) {
				continue
			}
			xs = append(xs, a.X+(ly-a.Y)/(b.Y-a.Y)*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Round(cx + xs[i]))
			x1 := int(math.Round(cx + xs[i+1]))
			for x := x0; x <= x1; x++ {
				c.SetPixel(x, y, col)
			}
		}
	}
}
