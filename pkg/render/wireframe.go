package render

import (
	"github.com/taigrr/lowpoly/pkg/math3d"
)

// Wireframe renders mesh edges as clipped lines in a single ink.
// There is no shading and no depth ordering.
type Wireframe struct {
	camera *Camera
	surf   Surface
	opts   Options

	frame frame
	edges [][2]int
	seen  map[[2]int]struct{}
	stats FrameStats
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, surf Surface, opts Options) (*Wireframe, error) {
	if err := checkArgs(camera, surf, &opts); err != nil {
		return nil, err
	}
	return &Wireframe{
		camera: camera,
		surf:   surf,
		opts:   opts,
		seen:   make(map[[2]int]struct{}),
	}, nil
}

// Stats returns the counters of the last Draw.
func (w *Wireframe) Stats() FrameStats { return w.stats }

// Draw renders the mesh's explicit segments, or the deduplicated edges of
// its faces when it has none.
func (w *Wireframe) Draw(mesh MeshRenderer) {
	w.stats = FrameStats{}

	if b, ok := mesh.(BoundedMesh); ok {
		center, radius := b.BoundingSphere()
		if !w.camera.Frustum().IntersectsSphere(w.camera.WorldToCamera(center), radius) {
			w.stats.MeshesCulled++
			return
		}
	}

	w.frame.transform(w.camera, mesh, false)
	for _, e := range w.edgeList(mesh) {
		w.drawSegment(w.frame.cam[e[0]], w.frame.cam[e[1]], w.opts.Ink)
	}
}

// edgeList returns the edges to draw for mesh. Derived edges keep the order
// in which faces first mention them, keyed on the unordered index pair.
func (w *Wireframe) edgeList(mesh MeshRenderer) [][2]int {
	w.edges = w.edges[:0]

	if s, ok := mesh.(SegmentedMesh); ok && s.SegmentCount() > 0 {
		for i := range s.SegmentCount() {
			w.edges = append(w.edges, s.GetSegment(i))
		}
		return w.edges
	}

	clear(w.seen)
	for i := range mesh.TriangleCount() {
		f := mesh.GetFace(i)
		for k := range 3 {
			a, b := f[k], f[(k+1)%3]
			key := [2]int{min(a, b), max(a, b)}
			if _, dup := w.seen[key]; dup {
				continue
			}
			w.seen[key] = struct{}{}
			w.edges = append(w.edges, key)
		}
	}
	return w.edges
}

// drawSegment clips and draws one camera-space segment.
func (w *Wireframe) drawSegment(p0, p1 math3d.Vec3, ink ColorIndex) {
	if p0.Z <= 0 && p1.Z <= 0 {
		w.stats.SegmentsRejected++
		return
	}

	q0, q1, ok := ClipSegment(p0, p1, w.camera.AX, w.camera.AY)
	if !ok {
		w.stats.SegmentsRejected++
		return
	}

	x0, y0, ok0 := w.camera.Project(q0)
	x1, y1, ok1 := w.camera.Project(q1)
	if !ok0 || !ok1 {
		w.stats.SegmentsRejected++
		return
	}

	w.surf.DrawLine(x0, y0, x1, y1, ink)
	w.stats.SegmentsDrawn++
}

// DrawLine3D draws a world-space line, clipped against the frustum.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color ColorIndex) {
	w.drawSegment(w.camera.WorldToCamera(p1), w.camera.WorldToCamera(p2), color)
}

// DrawAxes draws the world coordinate axes at the origin, one ink per axis.
func (w *Wireframe) DrawAxes(length float64, x, y, z ColorIndex) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), x)
	w.DrawLine3D(origin, math3d.V3(0, length, 0), y)
	w.DrawLine3D(origin, math3d.V3(0, 0, length), z)
}

// DrawGrid draws a grid on the XZ plane at height y.
func (w *Wireframe) DrawGrid(size, step, y float64, color ColorIndex) {
	if step <= 0 {
		return
	}
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, y, -half), math3d.V3(x, y, half), color)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, y, z), math3d.V3(half, y, z), color)
	}
}
