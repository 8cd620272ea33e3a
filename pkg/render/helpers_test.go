package render

import (
	"testing"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// testMesh is a world-space mesh: points are used as given.
type testMesh struct {
	points  []math3d.Vec3
	normals []math3d.Vec3
	faces   [][3]int
}

func (m *testMesh) VertexCount() int     { return len(m.points) }
func (m *testMesh) TriangleCount() int   { return len(m.faces) }
func (m *testMesh) GetFace(i int) [3]int { return m.faces[i] }

func (m *testMesh) TransformedPoints(dst []math3d.Vec3) []math3d.Vec3 {
	return append(dst[:0], m.points...)
}

func (m *testMesh) TransformedNormals(dst []math3d.Vec3) []math3d.Vec3 {
	dst = dst[:0]
	for i := range m.points {
		n := math3d.Forward()
		if i < len(m.normals) {
			n = m.normals[i]
		}
		dst = append(dst, n)
	}
	return dst
}

// Pixels sampled by the scene tests. With the default camera at the origin,
// (nearX, nearY) is covered by both triangles and (farX, farY) only by the
// far one. Neither lies on an edge.
const (
	nearX, nearY = 82, 55
	farX, farY   = 70, 70
)

// nearTriangle faces the camera at z = 2; its outward normal is -z.
func nearTriangle() ([]math3d.Vec3, [3]int) {
	return []math3d.Vec3{
		math3d.V3(0, 0, 2),
		math3d.V3(1, 0, 2),
		math3d.V3(0, 1, 2),
	}, [3]int{0, 1, 2}
}

// farTriangle faces away from the camera at z = 3 and covers the screen
// center and the lower left.
func farTriangle() ([]math3d.Vec3, [3]int) {
	return []math3d.Vec3{
		math3d.V3(-1, -1, 3),
		math3d.V3(-1, 2, 3),
		math3d.V3(2, -1, 3),
	}, [3]int{0, 1, 2}
}

// twoTriangles builds a mesh holding the near and far triangles, near first
// unless farFirst is set. Normals are the outward face normals.
func twoTriangles(farFirst bool) *testMesh {
	np, nf := nearTriangle()
	fp, ff := farTriangle()

	first, second := np, fp
	ffirst, fsecond := nf, ff
	nFirst, nSecond := math3d.V3(0, 0, -1), math3d.V3(0, 0, 1)
	if farFirst {
		first, second = fp, np
		ffirst, fsecond = ff, nf
		nFirst, nSecond = nSecond, nFirst
	}

	m := &testMesh{}
	m.points = append(m.points, first...)
	m.points = append(m.points, second...)
	for range 3 {
		m.normals = append(m.normals, nFirst)
	}
	for range 3 {
		m.normals = append(m.normals, nSecond)
	}
	m.faces = [][3]int{
		ffirst,
		{fsecond[0] + 3, fsecond[1] + 3, fsecond[2] + 3},
	}
	return m
}

// headOnOptions lights along the view axis, toward the camera.
// nearEyeTriangle faces the camera with one vertex just in front of the eye,
// so it projects tens of billions of pixels off screen.
func nearEyeTriangle() *testMesh {
	return &testMesh{
		points: []math3d.Vec3{math3d.V3(0, 0, 2), math3d.V3(1, 0, 1e-9), math3d.V3(0, 1, 2)},
		faces:  [][3]int{{0, 1, 2}},
	}
}

func headOnOptions() Options {
	o := DefaultOptions()
	o.Light = math3d.V3(0, 0, -1)
	o.Ambient = 0.2
	o.Diffuse = 0.8
	o.ShadeLevels = 16
	return o
}

func mustNew(tb testing.TB, kind Kind, cam *Camera, surf Surface, opts Options) Renderer {
	tb.Helper()
	r, err := New(kind, cam, surf, opts)
	if err != nil {
		tb.Fatalf("New(%s): %v", kind, err)
	}
	return r
}

func mustWireframe(tb testing.TB, cam *Camera, surf Surface, opts Options) *Wireframe {
	tb.Helper()
	w, err := NewWireframe(cam, surf, opts)
	if err != nil {
		tb.Fatalf("NewWireframe: %v", err)
	}
	return w
}
