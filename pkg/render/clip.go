package render

import "github.com/taigrr/lowpoly/pkg/math3d"

// Outcode bits, one per violated side plane.
const (
	OutLeft   = 1 << iota // x < -AX*z
	OutRight              // x > AX*z
	OutBottom             // y < -AY*z
	OutTop                // y > AY*z
)

// maxClipIterations bounds the clip loop; hitting it rejects the segment.
var maxClipIterations = 100

// Outcode returns the bitmask of side planes p lies outside of.
func Outcode(p math3d.Vec3, ax, ay float64) int {
	c := 0
	if p.X < -ax*p.Z {
		c |= OutLeft
	}
	if p.X > ax*p.Z {
		c |= OutRight
	}
	if p.Y < -ay*p.Z {
		c |= OutBottom
	}
	if p.Y > ay*p.Z {
		c |= OutTop
	}
	return c
}

// ClipSegment clips the camera-space segment p0-p1 against the four side
// planes given by the slopes ax and ay. It reports ok=false when nothing of
// the segment remains. Accepted endpoints may come back in swapped order.
//
// No near plane is involved: callers drop segments with both ends at z <= 0
// beforehand, and must still check the returned points before projecting.
func ClipSegment(p0, p1 math3d.Vec3, ax, ay float64) (q0, q1 math3d.Vec3, ok bool) {
	for range maxClipIterations {
		c0 := Outcode(p0, ax, ay)
		c1 := Outcode(p1, ax, ay)

		if c0|c1 == 0 {
			return p0, p1, true
		}
		if c0&c1 != 0 {
			return p0, p1, false
		}

		// Always move point 0.
		if c0 == 0 {
			p0, p1 = p1, p0
			c0 = c1
		}

		d := p1.Sub(p0)
		var t float64
		switch {
		case c0&OutLeft != 0:
			t = (-p0.X - ax*p0.Z) / (d.X + ax*d.Z)
		case c0&OutRight != 0:
			t = (ax*p0.Z - p0.X) / (d.X - ax*d.Z)
		case c0&OutBottom != 0:
			t = (-p0.Y - ay*p0.Z) / (d.Y + ay*d.Z)
		default:
			t = (ay*p0.Z - p0.Y) / (d.Y - ay*d.Z)
		}

		p0 = p0.Add(d.Scale(t))
	}

	Logger().Debug("clip iteration cap reached", "p0", p0, "p1", p1)
	return p0, p1, false
}
