package garden

// heartSegments traces the classic heart silhouette as four cubic bezier
// segments at unit scale, starting from the bottom point and going
// counter-clockwise. Coordinates are centered on the origin with the notch
// at +Y.
var heartSegments = [4][4][2]float32{
	{{0, -0.9}, {0.9, -0.25}, {1.0, 0.25}, {0.62, 0.62}},
	{{0.62, 0.62}, {0.3, 0.92}, {0.06, 0.72}, {0, 0.42}},
	{{0, 0.42}, {-0.06, 0.72}, {-0.3, 0.92}, {-0.62, 0.62}},
	{{-0.62, 0.62}, {-1.0, 0.25}, {-0.9, -0.25}, {0, -0.9}},
}

// HeartMesh builds a flat heart silhouette in the XY plane at the given
// scale. Used unmodified (no curvature) by the falling-heart layer.
func HeartMesh(scale float32, samplesPerSegment int) (*Mesh, error) {
	if scale <= 0 {
		return nil, configErrorf("heart", "non-positive scale %g", scale)
	}
	if samplesPerSegment < 3 {
		return nil, configErrorf("heart", "need at least 3 samples per segment, got %d", samplesPerSegment)
	}

	var outline [][2]float32
	for _, seg := range heartSegments {
		// Skip t=1 on each segment: it is the next segment's t=0.
		for i := 0; i < samplesPerSegment; i++ {
			t := float32(i) / float32(samplesPerSegment)
			p := sampleCubic(seg[0], seg[1], seg[2], seg[3], t)
			outline = append(outline, [2]float32{p[0] * scale, p[1] * scale})
		}
	}

	m := &Mesh{}
	for _, p := range outline {
		m.Positions = append(m.Positions, p[0], p[1], 0)
	}
	m.Indices = triangulateOutline(outline)
	m.ComputeNormals()
	return m, nil
}
