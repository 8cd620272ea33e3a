package render

import (
	"sync"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// ZBuffer rasterizes every face with barycentric traversal against a depth
// buffer it owns. Faces are neither sorted nor backface culled; the depth
// test alone decides visibility. The mode picks Gouraud or Phong shading.
type ZBuffer struct {
	camera *Camera
	surf   Surface
	opts   Options
	mode   ShadeMode

	depth   *DepthBuffer
	frame   frame
	normals []math3d.Vec3
	intens  []float64
	tris    []zTri
	bands   []FrameStats
	stats   FrameStats
}

// zTri is a face that passed setup, with everything the pixel loop reads.
type zTri struct {
	screenTri
	face [3]int
}

// NewZBuffer creates a z-buffered renderer sized to surf.
func NewZBuffer(camera *Camera, surf Surface, opts Options, mode ShadeMode) (*ZBuffer, error) {
	if err := checkArgs(camera, surf, &opts); err != nil {
		return nil, err
	}
	w, h := surf.Size()
	return &ZBuffer{
		camera: camera,
		surf:   surf,
		opts:   opts,
		mode:   mode,
		depth:  NewDepthBuffer(w, h),
	}, nil
}

// ClearDepth resets the depth buffer. Call it once at the start of every
// frame, before the first Draw.
func (r *ZBuffer) ClearDepth() {
	w, h := r.surf.Size()
	r.depth.Resize(w, h)
	r.depth.Clear()
}

// Depth exposes the depth buffer for inspection.
func (r *ZBuffer) Depth() *DepthBuffer { return r.depth }

// Stats returns the counters of the last Draw.
func (r *ZBuffer) Stats() FrameStats { return r.stats }

// Draw renders the mesh. Several meshes may be drawn into one frame; they
// share the depth buffer until the next ClearDepth.
func (r *ZBuffer) Draw(mesh MeshRenderer) {
	r.stats = FrameStats{}
	w, h := r.surf.Size()
	r.depth.Resize(w, h)

	r.frame.transform(r.camera, mesh, true)
	r.vertexNormals(mesh)

	if r.mode == ShadeGouraud {
		if cap(r.intens) < len(r.normals) {
			r.intens = make([]float64, len(r.normals))
		}
		r.intens = r.intens[:len(r.normals)]
		for i, n := range r.normals {
			r.intens[i] = GouraudIntensity(n, r.opts.Light, r.opts.Ambient, r.opts.Diffuse)
		}
	}

	r.tris = r.tris[:0]
	for i := range mesh.TriangleCount() {
		face := mesh.GetFace(i)
		r.stats.FacesTested++

		if !r.frame.projected(face) {
			r.stats.FacesCulled++
			continue
		}
		s := r.frame.screen
		t, ok := setupTri(s[face[0]], s[face[1]], s[face[2]], w, h)
		if !ok {
			r.stats.FacesDegenerate++
			continue
		}
		r.tris = append(r.tris, zTri{screenTri: t, face: face})
	}
	r.stats.FacesDrawn = len(r.tris)

	workers := min(r.opts.Workers, h)
	if workers <= 1 {
		r.stats.PixelsWritten = r.rasterBand(0, h-1)
	} else {
		r.rasterParallel(workers, h)
	}

	Logger().Debug("zbuffer frame", "mode", r.mode, "faces", r.stats.FacesDrawn, "pixels", r.stats.PixelsWritten)
}

// vertexNormals accumulates the outward normals of adjacent faces in camera
// space, weighted by area. Vertices touching no face get (0, 0, 1).
func (r *ZBuffer) vertexNormals(mesh MeshRenderer) {
	r.normals = grow(r.normals, len(r.frame.cam))
	clear(r.normals)

	for i := range mesh.TriangleCount() {
		face := mesh.GetFace(i)
		n := r.frame.faceCross(face).Negate()
		for _, idx := range face {
			r.normals[idx] = r.normals[idx].Add(n)
		}
	}
	for i, n := range r.normals {
		r.normals[i] = n.Normalize()
	}
}

// rasterParallel splits the surface into row bands, one per worker. Each
// band visits the faces in the same order and owns its rows exclusively, so
// the result matches the sequential pass pixel for pixel.
func (r *ZBuffer) rasterParallel(workers, h int) {
	if cap(r.bands) < workers {
		r.bands = make([]FrameStats, workers)
	}
	r.bands = r.bands[:workers]

	var wg sync.WaitGroup
	rows := (h + workers - 1) / workers
	for b := range workers {
		lo, hi := b*rows, min((b+1)*rows, h)-1
		wg.Go(func() {
			r.bands[b] = FrameStats{PixelsWritten: r.rasterBand(lo, hi)}
		})
	}
	wg.Wait()

	for _, s := range r.bands {
		r.stats.PixelsWritten += s.PixelsWritten
	}
}

// rasterBand draws every queued face clipped to rows [lo, hi] and returns
// the number of pixels written.
func (r *ZBuffer) rasterBand(lo, hi int) int {
	written := 0
	cam := r.frame.cam

	for i := range r.tris {
		t := &r.tris[i]
		i0, i1, i2 := t.face[0], t.face[1], t.face[2]
		z0, z1, z2 := cam[i0].Z, cam[i1].Z, cam[i2].Z

		t.traverse(lo, hi, func(x, y int, w0, w1, w2 float64) {
			z := z0 + w1*(z1-z0) + w2*(z2-z0)
			if z <= 0 || !r.depth.TestAndSet(x, y, z) {
				return
			}

			var c float64
			if r.mode == ShadePhong {
				n := math3d.Weighted(r.normals[i0], r.normals[i1], r.normals[i2], w0, w1, w2).Normalize()
				c = PhongIntensity(n, r.opts.Light, &r.opts)
			} else {
				c0 := r.intens[i0]
				c = c0 + w1*(r.intens[i1]-c0) + w2*(r.intens[i2]-c0)
			}

			r.surf.SetPixel(x, y, r.quantize(c, x, y))
			written++
		})
	}
	return written
}

func (r *ZBuffer) quantize(c float64, x, y int) ColorIndex {
	if r.opts.Dithered {
		return ColorIndex(QuantizeDithered(c, r.opts.ShadeLevels, x, y, r.opts.DitherPattern))
	}
	return ColorIndex(Quantize(c, r.opts.ShadeLevels))
}
