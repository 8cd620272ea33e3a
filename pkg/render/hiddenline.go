package render

// HiddenLine draws faces back to front (the painter's algorithm) with no
// depth buffer. Filled mode paints each face with a flat shade and outlines
// the ones facing the camera; wired mode only outlines, in a brighter ink
// for facing faces than for the rest.
type HiddenLine struct {
	camera *Camera
	surf   Surface
	opts   Options

	frame frame
	order []sortedFace
	stats FrameStats
}

// NewHiddenLine creates a painter's-algorithm renderer.
func NewHiddenLine(camera *Camera, surf Surface, opts Options) (*HiddenLine, error) {
	if err := checkArgs(camera, surf, &opts); err != nil {
		return nil, err
	}
	return &HiddenLine{camera: camera, surf: surf, opts: opts}, nil
}

// Stats returns the counters of the last Draw.
func (r *HiddenLine) Stats() FrameStats { return r.stats }

// Draw renders the mesh farthest face first.
func (r *HiddenLine) Draw(mesh MeshRenderer) {
	r.stats = FrameStats{}
	r.frame.transform(r.camera, mesh, true)
	f := &r.frame

	// Light stays fixed in camera space.
	light := r.opts.Light

	r.order = r.order[:0]
	for i := range mesh.TriangleCount() {
		face := mesh.GetFace(i)
		r.stats.FacesTested++

		// A vertex at or behind the eye has no screen position.
		if !f.projected(face) {
			r.stats.FacesCulled++
			continue
		}

		cross := f.faceCross(face)
		if cross.LenSq() == 0 {
			r.stats.FacesDegenerate++
			continue
		}
		n := cross.Normalize()

		r.order = append(r.order, sortedFace{
			face:      face,
			depth:     f.avgDepth(face),
			facing:    n.Z > 0,
			intensity: FlatIntensity(n.Negate(), light),
		})
	}

	sortFarthestFirst(r.order)

	for _, sf := range r.order {
		p0, p1, p2 := f.screen[sf.face[0]], f.screen[sf.face[1]], f.screen[sf.face[2]]

		if r.opts.Wired {
			ink := r.opts.BackInk
			if sf.facing {
				ink = r.opts.FrontInk
			}
			r.outline(p0, p1, p2, ink)
			r.stats.FacesDrawn++
			continue
		}

		fill := r.opts.BaseColor
		if r.opts.Shaded {
			fill = FlatShade(r.opts.BaseColor, sf.intensity, r.opts.FlatLevels, r.opts.PaletteSize)
		}
		r.surf.FillTriangle(p0.x, p0.y, p1.x, p1.y, p2.x, p2.y, fill)

		// Outline facing faces only.
		if sf.facing {
			r.outline(p0, p1, p2, r.opts.Background)
		}
		r.stats.FacesDrawn++
	}
}

func (r *HiddenLine) outline(p0, p1, p2 screenPoint, ink ColorIndex) {
	r.surf.DrawLine(p0.x, p0.y, p1.x, p1.y, ink)
	r.surf.DrawLine(p1.x, p1.y, p2.x, p2.y, ink)
	r.surf.DrawLine(p2.x, p2.y, p0.x, p0.y, ink)
}
