package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// Surface is the pixel target the renderers draw into. Writes outside the
// surface are clipped silently by the implementation.
type Surface interface {
	Size() (width, height int)
	SetPixel(x, y int, c ColorIndex)
	DrawLine(x0, y0, x1, y1 int, c ColorIndex)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c ColorIndex)
}

// MeshRenderer is the mesh access a renderer needs.
// This interface allows drawing meshes without importing the models package.
type MeshRenderer interface {
	VertexCount() int
	TriangleCount() int
	GetFace(i int) [3]int
	// TransformedPoints writes the world-space points into dst.
	TransformedPoints(dst []math3d.Vec3) []math3d.Vec3
	// TransformedNormals writes the world-space vertex normals into dst.
	TransformedNormals(dst []math3d.Vec3) []math3d.Vec3
}

// SegmentedMesh extends MeshRenderer with an explicit edge list for the
// wireframe path. A mesh with zero segments falls back to face edges.
type SegmentedMesh interface {
	MeshRenderer
	SegmentCount() int
	GetSegment(i int) [2]int
}

// BoundedMesh extends MeshRenderer with a world-space bounding sphere used to
// skip whole meshes outside the frustum.
type BoundedMesh interface {
	MeshRenderer
	BoundingSphere() (center math3d.Vec3, radius float64)
}

// Renderer draws a mesh through the camera into its surface.
type Renderer interface {
	Draw(mesh MeshRenderer)
	Stats() FrameStats
}

// DepthClearer is implemented by renderers that own a depth buffer. The
// driver calls ClearDepth once at the start of every frame.
type DepthClearer interface {
	ClearDepth()
}

// FrameStats counts what the last Draw did.
type FrameStats struct {
	FacesTested      int // faces considered
	FacesDrawn       int // faces rasterized
	FacesCulled      int // back-facing or behind the eye
	FacesDegenerate  int // zero area on screen
	SegmentsDrawn    int
	SegmentsRejected int // behind the eye or clipped away
	MeshesCulled     int // rejected by the bounding-sphere test
	PixelsWritten    int
}

// Kind selects a renderer variant.
type Kind int

// Renderer variants.
const (
	KindWireframe Kind = iota
	KindHiddenLine
	KindScanlineGouraud
	KindZBufferGouraud
	KindZBufferPhong
)

var kindNames = [...]string{
	KindWireframe:       "wireframe",
	KindHiddenLine:      "hiddenline",
	KindScanlineGouraud: "gouraud",
	KindZBufferGouraud:  "zgouraud",
	KindZBufferPhong:    "phong",
}

// Kinds lists every variant in order.
func Kinds() []Kind {
	return []Kind{KindWireframe, KindHiddenLine, KindScanlineGouraud, KindZBufferGouraud, KindZBufferPhong}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a renderer name as printed by Kind.String, plus a few
// aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wireframe", "wire":
		return KindWireframe, nil
	case "hiddenline", "hidden", "flat":
		return KindHiddenLine, nil
	case "gouraud", "scanline":
		return KindScanlineGouraud, nil
	case "zgouraud", "zbuffer":
		return KindZBufferGouraud, nil
	case "phong":
		return KindZBufferPhong, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Construction errors.
var (
	ErrUnknownKind        = errors.New("unknown renderer kind")
	ErrInvalidShadeLevels = errors.New("shade levels must be at least 2")
	ErrInvalidShininess   = errors.New("shininess must be positive")
	ErrNilSurface         = errors.New("nil surface")
	ErrNilCamera          = errors.New("nil camera")
)

// New creates the renderer variant for kind.
func New(kind Kind, cam *Camera, surf Surface, opts Options) (Renderer, error) {
	var (
		r   Renderer
		err error
	)
	switch kind {
	case KindWireframe:
		r, err = NewWireframe(cam, surf, opts)
	case KindHiddenLine:
		r, err = NewHiddenLine(cam, surf, opts)
	case KindScanlineGouraud:
		r, err = NewScanlineGouraud(cam, surf, opts)
	case KindZBufferGouraud:
		r, err = NewZBuffer(cam, surf, opts, ShadeGouraud)
	case KindZBufferPhong:
		r, err = NewZBuffer(cam, surf, opts, ShadePhong)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return r, nil
}

// checkArgs rejects missing collaborators and validates opts in place.
// Every renderer constructor calls it.
func checkArgs(cam *Camera, surf Surface, opts *Options) error {
	if cam == nil {
		return ErrNilCamera
	}
	if surf == nil {
		return ErrNilSurface
	}
	return opts.validate()
}
