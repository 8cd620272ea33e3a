package render

import (
	"github.com/taigrr/lowpoly/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum holds the camera-space planes of the view volume: the four side
// planes through the eye implied by AX and AY, plus the eye plane z = 0.
// There is no near or far plane. Each normal points inward.
type Frustum struct {
	Planes [5]Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumEye
)

// NewFrustum builds the frustum for clip slopes ax and ay.
func NewFrustum(ax, ay float64) Frustum {
	f := Frustum{Planes: [5]Plane{
		FrustumLeft:   {Normal: math3d.V3(1, 0, ax)},  // x >= -ax*z
		FrustumRight:  {Normal: math3d.V3(-1, 0, ax)}, // x <= ax*z
		FrustumBottom: {Normal: math3d.V3(0, 1, ay)},  // y >= -ay*z
		FrustumTop:    {Normal: math3d.V3(0, -1, ay)}, // y <= ay*z
		FrustumEye:    {Normal: math3d.V3(0, 0, 1)},   // z >= 0
	}}

	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	return f
}

// IntersectsSphere tests if a sphere intersects the frustum.
// center is the sphere center, radius is the sphere radius.
func (f Frustum) IntersectsSphere(center math3d.Vec3, radius float64) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}
