package render

import (
	"cmp"
	"slices"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// screenPoint is a projected vertex. ok is false when the vertex was at or
// behind the eye and has no screen position this frame.
type screenPoint struct {
	x, y int
	ok   bool
}

// frame is the per-draw scratch every variant starts from. Slices are kept
// between draws and resized to the current mesh.
type frame struct {
	world  []math3d.Vec3
	cam    []math3d.Vec3
	screen []screenPoint
}

// transform fills the camera-space points of mesh and, when project is set,
// their screen positions.
func (f *frame) transform(c *Camera, mesh MeshRenderer, project bool) {
	f.world = mesh.TransformedPoints(f.world)
	f.cam = grow(f.cam, len(f.world))

	rot := c.Rotation()
	for i, p := range f.world {
		f.cam[i] = rot.MulVec3(p.Sub(c.Position))
	}

	if !project {
		return
	}
	if cap(f.screen) < len(f.cam) {
		f.screen = make([]screenPoint, len(f.cam))
	}
	f.screen = f.screen[:len(f.cam)]
	for i, p := range f.cam {
		x, y, ok := c.Project(p)
		f.screen[i] = screenPoint{x, y, ok}
	}
}

// faceCross returns cross(v1-v0, v2-v0) of a camera-space face. Its z is
// positive when the face looks toward the camera; its negation is the
// outward normal.
func (f *frame) faceCross(face [3]int) math3d.Vec3 {
	v0 := f.cam[face[0]]
	return f.cam[face[1]].Sub(v0).Cross(f.cam[face[2]].Sub(v0))
}

// avgDepth returns the mean camera-space z of a face.
func (f *frame) avgDepth(face [3]int) float64 {
	return (f.cam[face[0]].Z + f.cam[face[1]].Z + f.cam[face[2]].Z) / 3
}

// projected reports whether all three vertices of a face have screen
// positions.
func (f *frame) projected(face [3]int) bool {
	return f.screen[face[0]].ok && f.screen[face[1]].ok && f.screen[face[2]].ok
}

// sortedFace is a face queued for painter's-order drawing.
type sortedFace struct {
	face      [3]int
	depth     float64
	facing    bool
	intensity float64
}

// sortFarthestFirst orders faces by descending depth. The sort is stable so
// faces at equal depth keep mesh order.
func sortFarthestFirst(faces []sortedFace) {
	slices.SortStableFunc(faces, func(a, b sortedFace) int {
		return cmp.Compare(b.depth, a.depth)
	})
}

func grow(s []math3d.Vec3, n int) []math3d.Vec3 {
	if cap(s) < n {
		return make([]math3d.Vec3, n)
	}
	return s[:n]
}
