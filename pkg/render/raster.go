package render

import "math"

// Barycentric returns the weights of pixel position (px, py) relative to the
// screen triangle (x0,y0) (x1,y1) (x2,y2). ok is false for a degenerate
// triangle. The weights sum to 1; any negative weight means outside.
func Barycentric(x0, y0, x1, y1, x2, y2, px, py float64) (w0, w1, w2 float64, ok bool) {
	d := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if d == 0 {
		return 0, 0, 0, false
	}
	w0 = ((y1-y2)*(px-x2) + (x2-x1)*(py-y2)) / d
	w1 = ((y2-y0)*(px-x2) + (x0-x2)*(py-y2)) / d
	return w0, w1, 1 - w0 - w1, true
}

// screenTri is a projected triangle prepared for bounding-box traversal.
type screenTri struct {
	x0, y0, x1, y1, x2, y2 float64
	invDenom               float64
	minX, maxX, minY, maxY int
}

// setupTri computes the barycentric denominator and the screen bounding
// box, clamped to a w x h surface. It reports false for degenerate or fully
// off-screen triangles.
func setupTri(p0, p1, p2 screenPoint, w, h int) (screenTri, bool) {
	t := screenTri{
		x0: float64(p0.x), y0: float64(p0.y),
		x1: float64(p1.x), y1: float64(p1.y),
		x2: float64(p2.x), y2: float64(p2.y),
	}

	d := (t.y1-t.y2)*(t.x0-t.x2) + (t.x2-t.x1)*(t.y0-t.y2)
	if d == 0 {
		return t, false
	}
	t.invDenom = 1 / d

	t.minX = max(int(math.Floor(min(t.x0, t.x1, t.x2))), 0)
	t.maxX = min(int(math.Ceil(max(t.x0, t.x1, t.x2))), w-1)
	t.minY = max(int(math.Floor(min(t.y0, t.y1, t.y2))), 0)
	t.maxY = min(int(math.Ceil(max(t.y0, t.y1, t.y2))), h-1)

	return t, t.minX <= t.maxX && t.minY <= t.maxY
}

// traverse calls fn for every pixel of rows [rowMin, rowMax] whose center
// lies inside the triangle, with its barycentric weights.
func (t *screenTri) traverse(rowMin, rowMax int, fn func(x, y int, w0, w1, w2 float64)) {
	y0, y1 := max(t.minY, rowMin), min(t.maxY, rowMax)
	for y := y0; y <= y1; y++ {
		yy := float64(y) + 0.5
		for x := t.minX; x <= t.maxX; x++ {
			xx := float64(x) + 0.5

			w0 := ((t.y1-t.y2)*(xx-t.x2) + (t.x2-t.x1)*(yy-t.y2)) * t.invDenom
			if w0 < 0 {
				continue
			}
			w1 := ((t.y2-t.y0)*(xx-t.x2) + (t.x0-t.x2)*(yy-t.y2)) * t.invDenom
			if w1 < 0 {
				continue
			}
			w2 := 1 - w0 - w1
			if w2 < 0 {
				continue
			}
			fn(x, y, w0, w1, w2)
		}
	}
}

// gouraudVertex is a projected vertex with its scalar intensity.
type gouraudVertex struct {
	x, y float64
	c    float64
}

// fillGouraud fills a triangle by walking scanlines from the topmost to the
// bottommost vertex, interpolating intensity along the edges and then
// across each span. Rows and spans are clamped to a w x h surface, so shade
// only receives covered pixels on it.
func fillGouraud(v0, v1, v2 gouraudVertex, w, h int, shade func(x, y int, c float64)) {
	// Sort by ascending y
	if v1.y < v0.y {
		v0, v1 = v1, v0
	}
	if v2.y < v0.y {
		v0, v2 = v2, v0
	}
	if v2.y < v1.y {
		v1, v2 = v2, v1
	}

	// With a flat bottom the short edge never switches to v1-v2.
	flatBottom := v1.y == v2.y

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }

	yTop := max(math.Ceil(v0.y), 0)
	yBottom := min(math.Floor(v2.y), float64(h-1))
	for y := int(yTop); float64(y) <= yBottom; y++ {
		fy := float64(y)

		var tLong float64
		if v2.y != v0.y {
			tLong = (fy - v0.y) / (v2.y - v0.y)
		}
		xl := lerp(v0.x, v2.x, tLong)
		cl := lerp(v0.c, v2.c, tLong)

		var xr, cr float64
		if fy < v1.y || flatBottom {
			var t float64
			if v1.y != v0.y {
				t = (fy - v0.y) / (v1.y - v0.y)
			}
			xr = lerp(v0.x, v1.x, t)
			cr = lerp(v0.c, v1.c, t)
		} else {
			var t float64
			if v2.y != v1.y {
				t = (fy - v1.y) / (v2.y - v1.y)
			}
			xr = lerp(v1.x, v2.x, t)
			cr = lerp(v1.c, v2.c, t)
		}

		if xl > xr {
			xl, xr = xr, xl
			cl, cr = cr, cl
		}

		xLeft := max(math.Ceil(xl), 0)
		xRight := min(math.Floor(xr), float64(w-1))
		for x := int(xLeft); float64(x) <= xRight; x++ {
			var t float64
			if xr != xl {
				t = (float64(x) - xl) / (xr - xl)
			}
			shade(x, y, lerp(cl, cr, t))
		}
	}
}
