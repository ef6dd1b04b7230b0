package garden

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float32
}

// HSL converts the color to hue/saturation/lightness. Hue is in [0, 1).
func (c Color) HSL() (h, s, l float32) {
	max := maxf(c.R, maxf(c.G, c.B))
	min := minf(c.R, minf(c.G, c.B))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return h / 6, s, l
}

// FromHSL builds a color from hue/saturation/lightness. Hue wraps modulo 1.
func FromHSL(h, s, l float32) Color {
	h = h - floorf(h)
	if s == 0 {
		return Color{l, l, l}
	}

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: hueToRGB(p, q, h+1.0/3.0),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3.0),
	}
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// Jitter returns the color offset in HSL space by bounded random amounts.
// Lightness is clamped to [0.02, 0.98], not [0, 1]: at l=1 every color
// collapses to pure white and at l=0 to black, and either endpoint throws
// away hue and saturation entirely, far beyond the jitter bounds.
func (c Color) Jitter(r *Rand, dh, ds, dl float32) Color {
	h, s, l := c.HSL()
	h += r.Range(-dh, dh)
	s = clampf(s+r.Range(-ds, ds), 0, 1)
	l = clampf(l+r.Range(-dl, dl), 0.02, 0.98)
	return FromHSL(h, s, l)
}

// Lerp interpolates between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + t*(other.R-c.R),
		G: c.G + t*(other.G-c.G),
		B: c.B + t*(other.B-c.B),
	}
}
