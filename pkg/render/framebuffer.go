// Package render turns meshes into palette-indexed pixels in software.
//
// The pipeline is camera transform, frustum clipping, then one of several
// interchangeable renderers (see New) writing into a Surface.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// ColorIndex selects an entry of a Palette.
type ColorIndex = uint8

// Framebuffer is an indexed pixel surface. It can be drawn to the terminal
// with half-block characters (▀▄), so a terminal needs Height/2 rows.
type Framebuffer struct {
	Width  int          // Width in pixels
	Height int          // Height in pixels
	Pixels []ColorIndex // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]ColorIndex, width*height),
	}
}

// Resize changes the dimensions, reusing the pixel storage when it is large
// enough. Contents are not preserved.
func (fb *Framebuffer) Resize(width, height int) {
	n := width * height
	if cap(fb.Pixels) < n {
		fb.Pixels = make([]ColorIndex, n)
	}
	fb.Pixels = fb.Pixels[:n]
	fb.Width, fb.Height = width, height
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c ColorIndex) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.Width, fb.Height
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c ColorIndex) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns 0 if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) ColorIndex {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// The line is clipped to the framebuffer first, so the cost is bounded by
// its size whatever the endpoints.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c ColorIndex) {
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, fb.Width-1, fb.Height-1)
	if !ok {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine clips a segment to the rectangle [0, xmax] x [0, ymax] with the
// Liang-Barsky parametric test. Segments already inside come back unchanged.
func clipLine(x0, y0, x1, y1, xmax, ymax int) (int, int, int, int, bool) {
	if xmax < 0 || ymax < 0 {
		return 0, 0, 0, 0, false
	}
	inside := func(x, y int) bool { return x >= 0 && x <= xmax && y >= 0 && y <= ymax }
	if inside(x0, y0) && inside(x1, y1) {
		return x0, y0, x1, y1, true
	}

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	t0, t1 := 0.0, 1.0
	edge := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
		return true
	}
	if !edge(-dx, fx0) || !edge(dx, float64(xmax)-fx0) ||
		!edge(-dy, fy0) || !edge(dy, float64(ymax)-fy0) {
		return 0, 0, 0, 0, false
	}

	at := func(t float64) (int, int) {
		x := min(max(int(math.Round(fx0+t*dx)), 0), xmax)
		y := min(max(int(math.Round(fy0+t*dy)), 0), ymax)
		return x, y
	}
	cx0, cy0 := at(t0)
	cx1, cy1 := at(t1)
	return cx0, cy0, cx1, cy1, true
}

// FillTriangle fills a triangle given in integer screen coordinates,
// including its edges. Pixels outside the framebuffer are clipped.
func (fb *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, c ColorIndex) {
	// Sort vertices by y
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y2 < y0 {
		x0, y0, x2, y2 = x2, y2, x0, y0
	}
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	if y0 == y2 {
		fb.hline(min(x0, x1, x2), max(x0, x1, x2), y0, c)
		return
	}

	edgeX := func(xa, ya, xb, yb, y int) int {
		return xa + int(math.Round(float64(xb-xa)*float64(y-ya)/float64(yb-ya)))
	}

	for y := max(y0, 0); y <= min(y2, fb.Height-1); y++ {
		xl := edgeX(x0, y0, x2, y2, y)
		var xr int
		switch {
		case y < y1:
			xr = edgeX(x0, y0, x1, y1, y)
		case y1 < y2:
			xr = edgeX(x1, y1, x2, y2, y)
		default: // flat bottom edge
			fb.hline(min(xl, x1, x2), max(xl, x1, x2), y, c)
			continue
		}
		fb.hline(min(xl, xr), max(xl, xr), y, c)
	}
}

// hline fills pixels xa..xb inclusive on row y.
func (fb *Framebuffer) hline(xa, xb, y int, c ColorIndex) {
	if y < 0 || y >= fb.Height {
		return
	}
	xa, xb = max(xa, 0), min(xb, fb.Width-1)
	row := fb.Pixels[y*fb.Width : (y+1)*fb.Width]
	for x := xa; x <= xb; x++ {
		row[x] = c
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a paletted image. Indices beyond the
// palette map to its last entry.
func (fb *Framebuffer) ToImage(p Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, fb.Width, fb.Height), p.Colors())
	last := ColorIndex(p.Len() - 1)
	for i, c := range fb.Pixels {
		img.Pix[i] = min(c, last)
	}
	return img
}

// WritePNG encodes the framebuffer as a PNG, enlarged by an integer factor
// with nearest-neighbor scaling so pixels stay crisp.
func (fb *Framebuffer) WritePNG(w io.Writer, p Palette, factor int) error {
	src := fb.ToImage(p)
	if factor <= 1 {
		return png.Encode(w, src)
	}

	dst := image.NewPaletted(image.Rect(0, 0, fb.Width*factor, fb.Height*factor), src.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string, p Palette, factor int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fb.WritePNG(f, p, factor); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// RGBA expands the framebuffer into 8-bit RGBA bytes, as window backends
// expect. dst is reused when it is large enough.
func (fb *Framebuffer) RGBA(p Palette, dst []byte) []byte {
	n := len(fb.Pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range fb.Pixels {
		rgba := p.RGBA(c)
		dst[i*4+0] = rgba.R
		dst[i*4+1] = rgba.G
		dst[i*4+2] = rgba.B
		dst[i*4+3] = rgba.A
	}
	return dst
}
