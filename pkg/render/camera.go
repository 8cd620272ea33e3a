package render

import (
	"math"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// Camera is a pinhole camera looking down +Z in its own space, with +Y up
// and +X right.
//
// Two independent parameters shape the image. The field of view derives the
// clip slopes AX and AY, which only decide what gets clipped. Scale alone
// maps camera space to pixels, so changing the FOV never zooms the picture.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation (Euler angles in degrees), applied with math3d.RotationXYZ
	RX, RY, RZ float64

	// Projection parameters
	FOVY    float64 // Vertical field of view in degrees
	Aspect  float64 // Width / Height, used for AX only
	ScreenW int
	ScreenH int
	Scale   float64 // Pixels per unit at unit depth

	// Derived clip slopes: x is inside when |x| <= AX*z, y when |y| <= AY*z.
	AX, AY float64
	// Screen center in pixels.
	CX, CY int

	rot       math3d.Mat3
	rotAngles [3]float64
	rotValid  bool
}

// NewCamera creates a camera with default settings: 60 degree FOV, a
// 160x120 screen and a projection scale of 50.
func NewCamera() *Camera {
	c := &Camera{
		FOVY:    60,
		Aspect:  160.0 / 120.0,
		ScreenW: 160,
		ScreenH: 120,
		Scale:   50,
	}
	c.update()
	return c
}

// NewCameraForScreen creates a default camera sized to a w x h surface.
// Aspect follows the screen so the side planes match its shape.
func NewCameraForScreen(w, h int, scale float64) *Camera {
	c := NewCamera()
	c.SetScreen(w, h)
	c.Scale = scale
	return c
}

func (c *Camera) update() {
	c.AY = math.Tan(math3d.Radians(c.FOVY) / 2)
	c.AX = c.AY * c.Aspect
	c.CX = c.ScreenW / 2
	c.CY = c.ScreenH / 2
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetRotation sets the camera rotation (degrees per axis).
func (c *Camera) SetRotation(rx, ry, rz float64) {
	c.RX, c.RY, c.RZ = rx, ry, rz
}

// SetFOV sets the vertical field of view (in degrees). Only the clip slopes
// change; Scale is untouched.
func (c *Camera) SetFOV(fovY float64) {
	c.FOVY = fovY
	c.update()
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.Aspect = aspect
	c.update()
}

// SetScreen sets the screen size, recentering the projection and matching
// the aspect ratio to it.
func (c *Camera) SetScreen(w, h int) {
	c.ScreenW, c.ScreenH = w, h
	if h > 0 {
		c.Aspect = float64(w) / float64(h)
	}
	c.update()
}

// Rotation returns the camera's rotation matrix. RX, RY and RZ may be set
// directly; the matrix is rebuilt whenever they change.
func (c *Camera) Rotation() math3d.Mat3 {
	angles := [3]float64{c.RX, c.RY, c.RZ}
	if !c.rotValid || angles != c.rotAngles {
		c.rot = math3d.RotationXYZ(c.RX, c.RY, c.RZ)
		c.rotAngles = angles
		c.rotValid = true
	}
	return c.rot
}

// WorldToCamera translates by the negative camera position, then rotates.
func (c *Camera) WorldToCamera(p math3d.Vec3) math3d.Vec3 {
	return c.Rotation().MulVec3(p.Sub(c.Position))
}

// CameraToWorld inverts WorldToCamera.
func (c *Camera) CameraToWorld(p math3d.Vec3) math3d.Vec3 {
	return c.Rotation().Transpose().MulVec3(p).Add(c.Position)
}

// RotateDir rotates a world-space direction into camera space.
func (c *Camera) RotateDir(d math3d.Vec3) math3d.Vec3 {
	return c.Rotation().MulVec3(d)
}

// maxScreenCoord bounds projected coordinates so they always convert to int.
// Points that land farther out sit just in front of the eye.
const maxScreenCoord = 1 << 40

// Project maps a camera-space point to integer screen coordinates.
// Screen y grows downward. Points at or behind the eye (z <= 0) are not
// projectable and report ok=false. Coordinates are clamped to
// ±maxScreenCoord.
func (c *Camera) Project(p math3d.Vec3) (x, y int, ok bool) {
	if p.Z <= 0 {
		return 0, 0, false
	}
	sx := float64(c.CX) + p.X/p.Z*c.Scale
	sy := float64(c.CY) - p.Y/p.Z*c.Scale
	if math.IsNaN(sx) || math.IsNaN(sy) {
		return 0, 0, false
	}
	sx = min(max(math.Round(sx), -maxScreenCoord), maxScreenCoord)
	sy = min(max(math.Round(sy), -maxScreenCoord), maxScreenCoord)
	return int(sx), int(sy), true
}

// LookAt turns the camera toward a world-space target by setting yaw and
// pitch. Roll is left unchanged.
func (c *Camera) LookAt(target math3d.Vec3) {
	d := target.Sub(c.Position)
	c.RY = math3d.Degrees(math.Atan2(d.X, d.Z))
	c.RX = -math3d.Degrees(math.Atan2(d.Y, math.Hypot(d.X, d.Z)))
}

// Frustum returns the camera-space side planes implied by AX and AY.
func (c *Camera) Frustum() Frustum {
	return NewFrustum(c.AX, c.AY)
}
