package render

import "github.com/taigrr/lowpoly/pkg/math3d"

// DitherPattern selects the threshold used by ordered dithering.
type DitherPattern int

const (
	// DitherHash thresholds with an integer hash of the pixel position.
	DitherHash DitherPattern = iota
	// DitherBayer thresholds with a 4x4 Bayer matrix.
	DitherBayer
)

// Options configures a renderer at construction time.
type Options struct {
	// Light is the direction toward the light. It is normalized by New;
	// the zero vector becomes (0, 0, 1).
	Light math3d.Vec3

	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64

	// ShadeLevels is the number of discrete shades the Gouraud and Phong
	// renderers quantize to. The scanline renderer always uses 8 shades
	// unless ScanlineLevels is set.
	ShadeLevels    int
	ScanlineLevels int
	// FlatLevels is how many indices the flat shade may step down from
	// BaseColor.
	FlatLevels int

	Wired         bool // outline faces (hidden-line renderer)
	Shaded        bool // light faces instead of filling with BaseColor
	Dithered      bool
	DitherPattern DitherPattern

	BaseColor  ColorIndex
	Background ColorIndex
	Ink        ColorIndex // wireframe color
	FrontInk   ColorIndex // outline of camera-facing faces
	BackInk    ColorIndex // outline of faces turned away

	// Workers > 1 splits the z-buffered rasterization into row bands that
	// run concurrently. Output is identical to the sequential pass.
	Workers int

	// PaletteSize bounds flat shade indices to [0, PaletteSize-1].
	PaletteSize int
}

// DefaultOptions returns the defaults used by the demo scene.
func DefaultOptions() Options {
	return Options{
		Light:          math3d.V3(1, -1, -1),
		Ambient:        0.2,
		Diffuse:        0.8,
		Specular:       0.4,
		Shininess:      32,
		ShadeLevels:    16,
		ScanlineLevels: 8,
		FlatLevels:     5,
		Shaded:         true,
		BaseColor:      7,
		Background:     0,
		Ink:            7,
		FrontInk:       7,
		BackInk:        1,
		Workers:        1,
		PaletteSize:    16,
	}
}

// validate normalizes the light and rejects unusable settings.
func (o *Options) validate() error {
	if o.ShadeLevels < 2 {
		return ErrInvalidShadeLevels
	}
	if o.Shininess <= 0 {
		return ErrInvalidShininess
	}
	if o.ScanlineLevels <= 0 {
		o.ScanlineLevels = 8
	}
	if o.PaletteSize <= 0 {
		o.PaletteSize = 16
	}
	o.Workers = max(o.Workers, 1)
	o.Light = o.Light.Normalize()
	return nil
}
