package render

// Gradient is an ordered sequence of color stops sampled by fractional
// position. The zero value is an empty gradient that samples to black
type Gradient struct {
	stops []RGB
}

// NewGradient builds a gradient from ordered stops. The slice is copied
func NewGradient(stops ...RGB) Gradient {
	s := make([]RGB, len(stops))
	copy(s, stops)
	return Gradient{stops: s}
}

// Len returns the stop count
func (g Gradient) Len() int {
	return len(g.stops)
}

// Stop returns the i-th stop
func (g Gradient) Stop(i int) RGB {
	return g.stops[i]
}

// First returns the first stop, or black for an empty gradient
func (g Gradient) First() RGB {
	if len(g.stops) == 0 {
		return RGBBlack
	}
	return g.stops[0]
}

// Last returns the last stop, or black for an empty gradient
func (g Gradient) Last() RGB {
	if len(g.stops) == 0 {
		return RGBBlack
	}
	return g.stops[len(g.stops)-1]
}

// Sample maps progress to a virtual index progress*(n-1) and interpolates
// between the two bracketing stops. progress is clamped to [0,1] before
// mapping, so samples at exact stop positions return the stop unchanged.
// A single-stop gradient returns that stop for all progress
func (g Gradient) Sample(progress float64) RGB {
	n := len(g.stops)
	switch n {
	case 0:
		return RGBBlack
	case 1:
		return g.stops[0]
	}

	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	pos := progress * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return g.stops[n-1]
	}
	frac := pos - float64(i)
	// Snap to the stop when progress lands an ulp off an integer
	// position, keeping samples at stop boundaries exact
	const snapEps = 1e-9
	if frac < snapEps {
		return g.stops[i]
	}
	if frac > 1-snapEps {
		return g.stops[i+1]
	}
	return Lerp(g.stops[i], g.stops[i+1], frac)
}
