package render

import (
	"math"
	"testing"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	if c.CX != 80 || c.CY != 60 {
		t.Errorf("center = (%d, %d), want (80, 60)", c.CX, c.CY)
	}
	wantAY := math.Tan(math3d.Radians(30))
	if math.Abs(c.AY-wantAY) > 1e-12 {
		t.Errorf("AY = %v, want %v", c.AY, wantAY)
	}
	if math.Abs(c.AX-wantAY*160/120) > 1e-12 {
		t.Errorf("AX = %v, want %v", c.AX, wantAY*160/120)
	}
}

func TestProject(t *testing.T) {
	c := NewCamera()

	tests := []struct {
		name   string
		p      math3d.Vec3
		x, y   int
		wantOK bool
	}{
		{"center", math3d.V3(0, 0, 5), 80, 60, true},
		{"right", math3d.V3(1, 0, 1), 130, 60, true},
		{"up is screen minus", math3d.V3(0, 1, 2), 80, 35, true},
		{"rounds", math3d.V3(0.01, 0, 1), 81, 60, true},
		{"at eye", math3d.V3(0, 0, 0), 0, 0, false},
		{"behind", math3d.V3(0, 0, -1), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := c.Project(tc.p)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && (x != tc.x || y != tc.y) {
				t.Errorf("Project = (%d, %d), want (%d, %d)", x, y, tc.x, tc.y)
			}
		})
	}
}

func TestWorldCameraRoundTrip(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math3d.V3(1, -2, 3))
	c.SetRotation(20, -35, 10)

	for _, p := range []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(5, 1, -7),
		math3d.V3(-3, 4, 2),
	} {
		back := c.CameraToWorld(c.WorldToCamera(p))
		if !back.ApproxEqual(p, 1e-9) {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}

func TestRotationFollowsFields(t *testing.T) {
	c := NewCamera()
	_ = c.Rotation()

	c.RY = 90
	got := c.RotateDir(math3d.V3(0, 0, 1))
	want := math3d.RotationXYZ(0, 90, 0).MulVec3(math3d.V3(0, 0, 1))
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("RotateDir after field change = %v, want %v", got, want)
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name   string
		pos    math3d.Vec3
		target math3d.Vec3
		rx, ry float64
	}{
		{"straight ahead", math3d.V3(0, 0, -5), math3d.Zero3(), 0, 0},
		{"yaw right", math3d.Zero3(), math3d.V3(1, 0, 1), 0, 45},
		{"yaw behind", math3d.Zero3(), math3d.V3(0, 0, -1), 0, 180},
		{"pitch up", math3d.Zero3(), math3d.V3(0, 1, 1), -45, 0},
		{"pitch down", math3d.V3(0, 2, 0), math3d.V3(0, 0, 2), 45, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera()
			c.SetPosition(tc.pos)
			c.RZ = 12
			c.LookAt(tc.target)

			if math.Abs(c.RX-tc.rx) > 1e-9 || math.Abs(c.RY-tc.ry) > 1e-9 {
				t.Errorf("(RX, RY) = (%v, %v), want (%v, %v)", c.RX, c.RY, tc.rx, tc.ry)
			}
			if c.RZ != 12 {
				t.Errorf("RZ = %v, LookAt must leave roll alone", c.RZ)
			}
		})
	}
}

func TestSetFOVKeepsScale(t *testing.T) {
	c := NewCamera()
	p := math3d.V3(0.5, 0.25, 2)
	x0, y0, _ := c.Project(p)

	c.SetFOV(90)
	x1, y1, _ := c.Project(p)

	if x0 != x1 || y0 != y1 {
		t.Errorf("projection moved from (%d, %d) to (%d, %d)", x0, y0, x1, y1)
	}
	if math.Abs(c.AY-1) > 1e-12 {
		t.Errorf("AY at 90 degrees = %v, want 1", c.AY)
	}
}

func TestSetScreen(t *testing.T) {
	c := NewCameraForScreen(200, 100, 40)
	if c.CX != 100 || c.CY != 50 {
		t.Errorf("center = (%d, %d), want (100, 50)", c.CX, c.CY)
	}
	if c.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", c.Aspect)
	}
	if c.Scale != 40 {
		t.Errorf("Scale = %v, want 40", c.Scale)
	}
}

func TestSetAspectRatio(t *testing.T) {
	c := NewCamera()
	c.SetAspectRatio(2)
	if math.Abs(c.AX-2*c.AY) > 1e-12 {
		t.Errorf("AX = %v, want 2*AY = %v", c.AX, 2*c.AY)
	}
	if c.CX != 80 || c.CY != 60 {
		t.Errorf("center moved to (%d, %d)", c.CX, c.CY)
	}
}

func TestProjectClampsNearEye(t *testing.T) {
	c := NewCamera()
	tests := []struct {
		name  string
		p     math3d.Vec3
		wantX int
		wantY int
	}{
		{"right", math3d.V3(1, 0, 1e-300), maxScreenCoord, c.CY},
		{"below", math3d.V3(0, -1, 1e-300), c.CX, maxScreenCoord},
		{"upper left", math3d.V3(-1, 1, 1e-300), -maxScreenCoord, -maxScreenCoord},
		{"near but representable", math3d.V3(1, 0, 1e-9), c.CX + 5e10, c.CY},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := c.Project(tc.p)
			if !ok {
				t.Fatal("Project rejected a point in front of the eye")
			}
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("Project(%v) = (%d, %d), want (%d, %d)", tc.p, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}
