package models

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

func triangleMesh() *Mesh {
	return NewMesh("tri", []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
	}, [][3]int{{0, 1, 2}})
}

func TestNewMeshDefaults(t *testing.T) {
	m := NewMesh("quad", []math3d.Vec3{
		math3d.V3(2, 0, 0),
		math3d.V3(0, 0, 0),
		math3d.V3(0, -3, 0),
	}, [][3]int{{0, 1, 2}})

	if m.Scale != 1 {
		t.Errorf("Scale = %v, want 1", m.Scale)
	}
	if got := m.Normals[0]; got != math3d.V3(1, 0, 0) {
		t.Errorf("Normals[0] = %v, want radial (1, 0, 0)", got)
	}
	if got := m.Normals[1]; got != math3d.V3(0, 0, 1) {
		t.Errorf("Normals[1] at origin = %v, want (0, 0, 1)", got)
	}
	if got := m.Normals[2]; got != math3d.V3(0, -1, 0) {
		t.Errorf("Normals[2] = %v, want (0, -1, 0)", got)
	}
	if m.BoundsMin != math3d.V3(0, -3, 0) || m.BoundsMax != math3d.V3(2, 0, 0) {
		t.Errorf("bounds = %v..%v, want (0,-3,0)..(2,0,0)", m.BoundsMin, m.BoundsMax)
	}
}

func TestLocalToWorld(t *testing.T) {
	m := triangleMesh()
	m.Scale = 2
	m.Rotation = math3d.V3(0, 0, 90)
	m.Position = math3d.V3(10, 0, 0)

	// (1,0,0) scaled to (2,0,0), rotated about z to (0,2,0), then translated.
	got := m.LocalToWorld(math3d.V3(1, 0, 0))
	if !got.ApproxEqual(math3d.V3(10, 2, 0), 1e-12) {
		t.Errorf("LocalToWorld = %v, want (10, 2, 0)", got)
	}

	pts := m.TransformedPoints(nil)
	for i, p := range m.Points {
		if want := m.LocalToWorld(p); !pts[i].ApproxEqual(want, 1e-12) {
			t.Errorf("TransformedPoints[%d] = %v, want %v", i, pts[i], want)
		}
	}
}

func TestTransformedPointsReusesBuffer(t *testing.T) {
	m := triangleMesh()
	buf := make([]math3d.Vec3, 0, 16)
	out := m.TransformedPoints(buf)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Error("TransformedPoints allocated despite sufficient capacity")
	}
}

func TestTransformedNormals(t *testing.T) {
	m := NewMesh("n", []math3d.Vec3{math3d.V3(1, 0, 0)}, nil)
	m.Rotation = math3d.V3(0, 0, 90)
	m.Position = math3d.V3(5, 5, 5)
	m.Scale = 3

	got := m.TransformedNormals(nil)[0]
	if !got.ApproxEqual(math3d.V3(0, 1, 0), 1e-12) {
		t.Errorf("TransformedNormals = %v, want (0, 1, 0)", got)
	}
}

func TestBoundingSphere(t *testing.T) {
	m := Cube(2)
	m.Position = math3d.V3(0, 0, 10)
	m.Scale = 2

	c, r := m.BoundingSphere()
	if !c.ApproxEqual(math3d.V3(0, 0, 10), 1e-12) {
		t.Errorf("center = %v, want (0, 0, 10)", c)
	}
	if want := 2 * math.Sqrt(3); math.Abs(r-want) > 1e-12 {
		t.Errorf("radius = %v, want %v", r, want)
	}
}

func TestCalculateSmoothNormals(t *testing.T) {
	// A camera-facing triangle in this winding has outward normal -z.
	m := NewMesh("tri", []math3d.Vec3{
		math3d.V3(0, 0, 2),
		math3d.V3(1, 0, 2),
		math3d.V3(0, 1, 2),
	}, [][3]int{{0, 1, 2}})

	cross := m.Points[1].Sub(m.Points[0]).Cross(m.Points[2].Sub(m.Points[0]))
	if cross.Z <= 0 {
		t.Fatalf("test triangle cross.z = %v, want > 0", cross.Z)
	}

	m.CalculateSmoothNormals()
	for i, n := range m.Normals {
		if !n.ApproxEqual(math3d.V3(0, 0, -1), 1e-12) {
			t.Errorf("Normals[%d] = %v, want (0, 0, -1)", i, n)
		}
	}
}

func TestTransformMirrorFlipsWinding(t *testing.T) {
	m := triangleMesh()
	m.Transform(math3d.Scale(math3d.V3(-1, 1, 1)))

	if got := m.Faces[0]; got != [3]int{0, 2, 1} {
		t.Errorf("Faces[0] = %v, want [0 2 1]", got)
	}
	if m.Points[1] != math3d.V3(-1, 0, 0) {
		t.Errorf("Points[1] = %v, want (-1, 0, 0)", m.Points[1])
	}
	if m.BoundsMin.X != -1 {
		t.Errorf("BoundsMin.X = %v, want -1", m.BoundsMin.X)
	}
}

func TestAppend(t *testing.T) {
	a := triangleMesh()
	b := Cube(1)
	a.Append(b)

	if a.VertexCount() != 3+8 {
		t.Errorf("VertexCount = %d, want 11", a.VertexCount())
	}
	if a.TriangleCount() != 1+12 {
		t.Errorf("TriangleCount = %d, want 13", a.TriangleCount())
	}
	if a.SegmentCount() != 12 {
		t.Errorf("SegmentCount = %d, want 12", a.SegmentCount())
	}
	if got := a.GetSegment(0); got != [2]int{3, 4} {
		t.Errorf("GetSegment(0) = %v, want [3 4]", got)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    *Mesh
		wantErr bool
		is      error
	}{
		{"valid", triangleMesh(), false, nil},
		{"empty", NewMesh("e", nil, nil), true, ErrNoGeometry},
		{"points only", NewMesh("p", []math3d.Vec3{{}}, nil), true, ErrNoGeometry},
		{"bad face", NewMesh("f", []math3d.Vec3{{}, {}}, [][3]int{{0, 1, 2}}), true, nil},
		{"negative index", NewMesh("n", []math3d.Vec3{{}, {}, {}}, [][3]int{{0, -1, 2}}), true, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mesh.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("Validate() = %v, want %v", err, tc.is)
			}
		})
	}

	t.Run("bad segment", func(t *testing.T) {
		m := triangleMesh()
		m.Segments = [][2]int{{0, 9}}
		if err := m.Validate(); err == nil {
			t.Error("expected error for out-of-range segment")
		}
	})
}
