package render

import (
	"math"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// ShadeMode selects the per-pixel model of the z-buffered renderer.
type ShadeMode int

const (
	// ShadeGouraud interpolates per-vertex intensities.
	ShadeGouraud ShadeMode = iota
	// ShadePhong interpolates normals and lights every pixel.
	ShadePhong
)

// viewAxis is the fixed view direction used for specular highlights.
var viewAxis = math3d.Forward()

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// FlatIntensity is the painter's face brightness: sqrt(max(0, n·l)).
func FlatIntensity(n, l math3d.Vec3) float64 {
	return math.Sqrt(math.Max(0, n.Dot(l)))
}

// FlatShade darkens base by up to levels indices as intensity grows, clamped
// to [0, paletteSize-1].
func FlatShade(base ColorIndex, intensity float64, levels, paletteSize int) ColorIndex {
	s := int(base) - int(intensity*float64(levels))
	return ColorIndex(max(0, min(paletteSize-1, s)))
}

// ScanlineIntensity is the vertex intensity of the scanline renderer:
// ambient plus diffuse Lambert, capped at 1.
func ScanlineIntensity(n, l math3d.Vec3, ambient, diffuse float64) float64 {
	return math.Min(1, ambient+diffuse*math.Max(0, n.Dot(l)))
}

// GouraudIntensity is the vertex intensity of the z-buffered Gouraud
// renderer, clamped to [0, 1].
func GouraudIntensity(n, l math3d.Vec3, ambient, diffuse float64) float64 {
	return clamp01(ambient + math.Max(0, n.Dot(l))*diffuse)
}

// PhongIntensity lights a unit normal with ambient, diffuse and a specular
// term from the reflection of l about n against the fixed view axis.
func PhongIntensity(n, l math3d.Vec3, o *Options) float64 {
	diff := math.Max(0, n.Dot(l))

	var spec float64
	if diff > 0 {
		r := n.Scale(2 * diff).Sub(l)
		if vr := r.Dot(viewAxis); vr > 0 {
			spec = math.Pow(vr, o.Shininess) * o.Specular
		}
	}

	return clamp01(o.Ambient + diff*o.Diffuse + spec)
}

// Quantize maps an intensity to a shade index in [0, levels-1] by truncation.
func Quantize(intensity float64, levels int) int {
	return int(clamp01(intensity) * float64(levels-1))
}

// QuantizeDithered splits intensity*(levels-1) into its integer part and
// remainder, and rounds up where the pixel's threshold is below the
// remainder. The result depends only on the inputs.
func QuantizeDithered(intensity float64, levels, x, y int, p DitherPattern) int {
	v := clamp01(intensity) * float64(levels-1)
	s0 := int(v)
	if DitherThreshold(x, y, p) < v-float64(s0) {
		return min(s0+1, levels-1)
	}
	return s0
}
