package render

import "github.com/taigrr/lowpoly/pkg/math3d"

// ScanlineGouraud fills camera-facing faces back to front with
// per-vertex intensities interpolated along scanlines. There is no depth
// buffer.
type ScanlineGouraud struct {
	camera *Camera
	surf   Surface
	opts   Options

	frame   frame
	normals []math3d.Vec3
	intens  []float64
	order   []sortedFace
	stats   FrameStats
}

// NewScanlineGouraud creates a scanline Gouraud renderer.
func NewScanlineGouraud(camera *Camera, surf Surface, opts Options) (*ScanlineGouraud, error) {
	if err := checkArgs(camera, surf, &opts); err != nil {
		return nil, err
	}
	return &ScanlineGouraud{camera: camera, surf: surf, opts: opts}, nil
}

// Stats returns the counters of the last Draw.
func (r *ScanlineGouraud) Stats() FrameStats { return r.stats }

// Draw renders the mesh farthest face first.
func (r *ScanlineGouraud) Draw(mesh MeshRenderer) {
	r.stats = FrameStats{}
	r.frame.transform(r.camera, mesh, true)
	f := &r.frame

	// Vertex intensities from the mesh normals, rotated into camera space.
	r.normals = mesh.TransformedNormals(r.normals)
	if cap(r.intens) < len(r.normals) {
		r.intens = make([]float64, len(r.normals))
	}
	r.intens = r.intens[:len(r.normals)]
	for i, n := range r.normals {
		r.intens[i] = ScanlineIntensity(r.camera.RotateDir(n), r.opts.Light, r.opts.Ambient, r.opts.Diffuse)
	}

	r.order = r.order[:0]
	for i := range mesh.TriangleCount() {
		face := mesh.GetFace(i)
		r.stats.FacesTested++

		if !f.projected(face) || f.faceCross(face).Z <= 0 {
			r.stats.FacesCulled++
			continue
		}
		r.order = append(r.order, sortedFace{face: face, depth: f.avgDepth(face)})
	}

	sortFarthestFirst(r.order)

	levels := float64(r.opts.ScanlineLevels - 1)
	w, h := r.surf.Size()
	shade := func(x, y int, c float64) {
		r.surf.SetPixel(x, y, ColorIndex(int(clamp01(c)*levels)))
		r.stats.PixelsWritten++
	}

	for _, sf := range r.order {
		var v [3]gouraudVertex
		for k, idx := range sf.face {
			p := f.screen[idx]
			v[k] = gouraudVertex{x: float64(p.x), y: float64(p.y), c: r.intens[idx]}
		}
		fillGouraud(v[0], v[1], v[2], w, h, shade)
		r.stats.FacesDrawn++
	}
}
