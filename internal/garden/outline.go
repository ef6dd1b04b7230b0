package garden

// triangulateOutline ear-clips a closed 2D polygon given as [x, y] points in
// counter-clockwise order, with no repeated final point. Returns triangle
// indices into the input. Handles the concave outlines (heart notch) the
// centroid-fan approach cannot.
func triangulateOutline(pts [][2]float32) []uint32 {
	n := len(pts)
	if n < 3 {
		return nil
	}

	remaining := make([]uint32, n)
	for i := range remaining {
		remaining[i] = uint32(i)
	}

	var indices []uint32
	guard := 0
	for len(remaining) > 3 && guard < n*n {
		guard++
		clipped := false
		for i := 0; i < len(remaining); i++ {
			prev := remaining[(i+len(remaining)-1)%len(remaining)]
			cur := remaining[i]
			next := remaining[(i+1)%len(remaining)]

			a, b, c := pts[prev], pts[cur], pts[next]
			if cross2(a, b, c) <= 0 {
				continue // reflex corner
			}

			ear := true
			for _, other := range remaining {
				if other == prev || other == cur || other == next {
					continue
				}
				if pointInTriangle(pts[other], a, b, c) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}

			indices = append(indices, prev, cur, next)
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate input; fall back to a fan so we still return a
			// watertight-ish surface instead of looping forever.
			break
		}
	}
	if len(remaining) >= 3 {
		for i := 1; i < len(remaining)-1; i++ {
			indices = append(indices, remaining[0], remaining[i], remaining[i+1])
		}
	}
	return indices
}

func cross2(a, b, c [2]float32) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func pointInTriangle(p, a, b, c [2]float32) bool {
	d1 := cross2(p, a, b)
	d2 := cross2(p, b, c)
	d3 := cross2(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// sampleCubic evaluates a 2D cubic bezier at t.
func sampleCubic(p0, p1, p2, p3 [2]float32, t float32) [2]float32 {
	inv := 1 - t
	b0 := inv * inv * inv
	b1 := 3 * inv * inv * t
	b2 := 3 * inv * t * t
	b3 := t * t * t
	return [2]float32{
		b0*p0[0] + b1*p1[0] + b2*p2[0] + b3*p3[0],
		b0*p0[1] + b1*p1[1] + b2*p2[1] + b3*p3[1],
	}
}
