package garden

import "github.com/chewxy/math32"

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorf(v float32) float32 {
	return math32.Floor(v)
}

// positiveMod returns x mod m in [0, m), for any sign of x. The built-in
// remainder keeps the sign of x, which is not what periodic geometry wants:
// feeding a negative angle through a signed remainder puts the result in
// (-m, 0] and introduces a discontinuity at zero.
func positiveMod(x, m float32) float32 {
	r := math32.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
