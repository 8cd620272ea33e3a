package main

import (
	"fmt"
	"log/slog"

	"github.com/taigrr/lowpoly/pkg/math3d"
	"github.com/taigrr/lowpoly/pkg/models"
	"github.com/taigrr/lowpoly/pkg/render"
)

// fitRadius is how much of the short screen side a unit-radius mesh spans
// from its center when the scale is chosen automatically.
const fitRadius = 0.4

// Ground grid extent and spacing, in world units.
const (
	gridSize = 4
	gridStep = 0.5
)

// scene owns everything one presenter draws: the mesh, the camera, the
// framebuffer and a renderer per kind, created on first use.
type scene struct {
	cfg     sceneConfig
	opts    render.Options
	mesh    *models.Mesh
	cam     *render.Camera
	fb      *render.Framebuffer
	palette render.Palette
	spin    *spinState

	kind      render.Kind
	renderers map[render.Kind]render.Renderer
	overlay   *render.Wireframe
	frames    int
}

// newScene builds a scene for a width x height framebuffer.
func newScene(cfg sceneConfig, width, height int) (*scene, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	kind, err := render.ParseKind(cfg.renderer)
	if err != nil {
		return nil, err
	}
	mesh, err := cfg.loadMesh()
	if err != nil {
		return nil, err
	}
	palette, err := render.ParsePalette(cfg.palette, opts.ShadeLevels)
	if err != nil {
		return nil, err
	}
	opts.PaletteSize = palette.Len()

	s := &scene{
		cfg:       cfg,
		opts:      opts,
		mesh:      mesh,
		cam:       render.NewCamera(),
		fb:        render.NewFramebuffer(width, height),
		palette:   palette,
		spin:      newSpinState(cfg.fps, cfg.spin),
		renderers: make(map[render.Kind]render.Renderer),
	}
	s.cam.SetPosition(math3d.V3(0, 0, -cfg.cameraZ))
	s.cam.LookAt(math3d.Zero3())
	s.resize(width, height)

	if err := s.setKind(kind); err != nil {
		return nil, err
	}
	if cfg.axes || cfg.grid {
		if s.overlay, err = render.NewWireframe(s.cam, s.fb, opts); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// resize matches the framebuffer and camera to a new surface size.
func (s *scene) resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	s.fb.Resize(width, height)
	s.cam.SetScreen(width, height)
	s.cam.SetFOV(s.cfg.fov)

	s.cam.Scale = s.cfg.scale
	if s.cam.Scale <= 0 {
		s.cam.Scale = float64(min(width, height)) * fitRadius * s.cfg.cameraZ
	}
}

// setKind switches the active renderer.
func (s *scene) setKind(kind render.Kind) error {
	if _, ok := s.renderers[kind]; !ok {
		r, err := render.New(kind, s.cam, s.fb, s.opts)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		s.renderers[kind] = r
	}
	s.kind = kind
	return nil
}

// apply hands one frame of input to the scene.
func (s *scene) apply(in frameInput) error {
	if in.reset {
		s.spin.reset()
	}
	s.spin.impulse(in.pitch, in.yaw)
	if in.kindSet && in.kind != s.kind {
		return s.setKind(in.kind)
	}
	return nil
}

// step advances the animation by one frame.
func (s *scene) step() {
	s.spin.update()
	s.mesh.Rotation = math3d.V3(s.spin.Pitch.Angle, s.spin.Yaw.Angle, 0)
}

// render draws one frame into the framebuffer.
func (s *scene) render() render.FrameStats {
	r := s.renderers[s.kind]

	s.fb.Clear(s.opts.Background)
	if dc, ok := r.(render.DepthClearer); ok {
		dc.ClearDepth()
	}
	r.Draw(s.mesh)

	if s.cfg.grid {
		s.overlay.DrawGrid(gridSize, gridStep, -1.25, 8)
	}
	if s.cfg.axes {
		s.overlay.DrawAxes(1.5, 8, 11, 12)
	}

	s.frames++
	stats := r.Stats()
	render.Logger().Debug("frame",
		slog.Int("n", s.frames),
		slog.String("renderer", s.kind.String()),
		slog.Int("faces", stats.FacesDrawn),
		slog.Int("culled", stats.FacesCulled),
		slog.Int("segments", stats.SegmentsDrawn),
		slog.Int("pixels", stats.PixelsWritten),
	)
	return stats
}
