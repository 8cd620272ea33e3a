package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps color indices to RGB. The renderers only rely on distinct
// indices being distinct colors; everything else is up to the presenter.
type Palette struct {
	colors []color.RGBA
}

// NewPalette creates a palette from colors. An empty palette gets black.
func NewPalette(colors ...color.Color) Palette {
	if len(colors) == 0 {
		colors = []color.Color{color.Black}
	}
	p := Palette{colors: make([]color.RGBA, len(colors))}
	for i, c := range colors {
		p.colors[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return p
}

// defaultColors is the 16-color palette the shade indices were tuned for.
var defaultColors = []uint32{
	0x000000, 0x2b335f, 0x7e2072, 0x19959c,
	0x8b4852, 0x395c98, 0xa9c1ff, 0xeeeeee,
	0xd4186c, 0xd38441, 0xe9c35b, 0x70c6a9,
	0x7696de, 0xa3a3a3, 0xff9798, 0xedc7b0,
}

// DefaultPalette returns the 16-color default palette.
func DefaultPalette() Palette {
	colors := make([]color.Color, len(defaultColors))
	for i, c := range defaultColors {
		colors[i] = color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xff}
	}
	return NewPalette(colors...)
}

// NewRampPalette blends n colors from one hex color to another in CIE-Lab,
// which keeps the steps perceptually even. Shade index 0 is from.
func NewRampPalette(from, to string, n int) (Palette, error) {
	a, err := colorful.Hex(from)
	if err != nil {
		return Palette{}, fmt.Errorf("ramp start %q: %w", from, err)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return Palette{}, fmt.Errorf("ramp end %q: %w", to, err)
	}
	n = max(n, 2)

	colors := make([]color.Color, n)
	for i := range n {
		colors[i] = a.BlendLab(b, float64(i)/float64(n-1)).Clamped()
	}
	return NewPalette(colors...), nil
}

// Named ramps accepted by ParsePalette.
var namedRamps = map[string][2]string{
	"gray":  {"#000000", "#ffffff"},
	"amber": {"#1a0b00", "#ffc66d"},
	"green": {"#001a05", "#7dff9b"},
	"ocean": {"#03071e", "#9ad1ff"},
}

// ParsePalette resolves a palette name: "default", a named ramp ("gray",
// "amber", "green", "ocean"), or "ramp:#rrggbb:#rrggbb". Ramps get n entries.
func ParsePalette(name string, n int) (Palette, error) {
	switch name := strings.ToLower(strings.TrimSpace(name)); {
	case name == "" || name == "default":
		return DefaultPalette(), nil
	case strings.HasPrefix(name, "ramp:"):
		parts := strings.Split(name, ":")
		if len(parts) != 3 {
			return Palette{}, fmt.Errorf("palette %q: want ramp:#from:#to", name)
		}
		return NewRampPalette(parts[1], parts[2], n)
	default:
		ramp, ok := namedRamps[name]
		if !ok {
			return Palette{}, fmt.Errorf("unknown palette %q", name)
		}
		return NewRampPalette(ramp[0], ramp[1], n)
	}
}

// Len returns the number of entries.
func (p Palette) Len() int {
	return len(p.colors)
}

// RGBA returns the color for index i, clamped to the last entry.
func (p Palette) RGBA(i ColorIndex) color.RGBA {
	if len(p.colors) == 0 {
		return color.RGBA{A: 0xff}
	}
	return p.colors[min(int(i), len(p.colors)-1)]
}

// Colors returns the palette as a color.Palette.
func (p Palette) Colors() color.Palette {
	out := make(color.Palette, len(p.colors))
	for i, c := range p.colors {
		out[i] = c
	}
	return out
}
