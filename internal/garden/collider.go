package garden

import (
	"github.com/chewxy/math32"
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// Capsule is the simplified collision volume attached to the rose: a
// swept sphere between A and B, coaxial with the stem. It is never
// rendered; pointer rays are tested against it alone.
type Capsule struct {
	A, B   math.Vec3
	Radius float32
}

// IntersectRay returns the distance along the ray to the first capsule hit.
// dir must be normalized.
func (c Capsule) IntersectRay(origin, dir math.Vec3) (float32, bool) {
	best := float32(math32.MaxFloat32)
	hit := false

	// Infinite cylinder around the capsule axis, then clamp hits to the
	// segment span.
	axis := c.B.Sub(c.A)
	axisLen := axis.Length()
	if axisLen > 1e-6 {
		ad := axis.Scale(1 / axisLen)
		oc := origin.Sub(c.A)

		d := dir.Sub(ad.Scale(dir.Dot(ad)))
		o := oc.Sub(ad.Scale(oc.Dot(ad)))

		qa := d.Dot(d)
		qb := 2 * d.Dot(o)
		qc := o.Dot(o) - c.Radius*c.Radius
		if qa > 1e-8 {
			disc := qb*qb - 4*qa*qc
			if disc >= 0 {
				sq := math32.Sqrt(disc)
				for _, t := range [2]float32{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
					if t < 0 || t >= best {
						continue
					}
					p := origin.Add(dir.Scale(t))
					proj := p.Sub(c.A).Dot(ad)
					if proj >= 0 && proj <= axisLen {
						best = t
						hit = true
					}
				}
			}
		}
	}

	// Sphere caps.
	for _, center := range [2]math.Vec3{c.A, c.B} {
		if t, ok := raySphere(origin, dir, center, c.Radius); ok && t < best {
			best = t
			hit = true
		}
	}

	if !hit {
		return 0, false
	}
	return best, true
}

func raySphere(origin, dir, center math.Vec3, radius float32) (float32, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
