package render

// ZFar is the depth a cleared buffer holds: farther than anything drawn.
const ZFar = 1e9

// DepthBuffer holds the nearest camera-space depth accepted at each pixel
// this frame. It belongs to a single renderer.
type DepthBuffer struct {
	Width  int
	Height int
	Data   []float64 // Row-major
}

// NewDepthBuffer creates a cleared depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{}
	d.Resize(width, height)
	return d
}

// Resize matches the buffer to a surface size. A size change clears it;
// otherwise the contents are kept.
func (d *DepthBuffer) Resize(width, height int) {
	if width == d.Width && height == d.Height && len(d.Data) == width*height {
		return
	}
	d.Width, d.Height = width, height
	d.Data = make([]float64, width*height)
	d.Clear()
}

// Clear resets every entry to ZFar.
func (d *DepthBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(d.Data)
	if n == 0 {
		return
	}
	d.Data[0] = ZFar
	for i := 1; i < n; i *= 2 {
		copy(d.Data[i:], d.Data[:i])
	}
}

// At returns the depth at (x, y), or ZFar outside the buffer.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return ZFar
	}
	return d.Data[y*d.Width+x]
}

// TestAndSet stores z at (x, y) if it is strictly closer than the current
// value, and reports whether it did. Callers keep (x, y) in bounds.
func (d *DepthBuffer) TestAndSet(x, y int, z float64) bool {
	i := y*d.Width + x
	if z >= d.Data[i] {
		return false
	}
	d.Data[i] = z
	return true
}
