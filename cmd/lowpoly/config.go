package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/taigrr/lowpoly/pkg/math3d"
	"github.com/taigrr/lowpoly/pkg/models"
	"github.com/taigrr/lowpoly/pkg/render"
)

var errBadLight = errors.New("light needs exactly three components x,y,z")

// sceneConfig holds every flag shared by the subcommands.
type sceneConfig struct {
	renderer string
	mesh     string
	subdiv   int
	lat, lon int

	width, height int
	scale         float64
	fov           float64
	cameraZ       float64

	light         []float64
	ambient       float64
	diffuse       float64
	specular      float64
	shininess     float64
	levels        int
	wired         bool
	shaded        bool
	dither        bool
	ditherPattern string
	palette       string
	workers       int

	fps     int
	spin    float64
	axes    bool
	grid    bool
	verbose bool
}

func defaultSceneConfig() sceneConfig {
	o := render.DefaultOptions()
	return sceneConfig{
		renderer:      render.KindZBufferPhong.String(),
		mesh:          "icosphere",
		subdiv:        2,
		lat:           12,
		lon:           18,
		width:         160,
		height:        120,
		fov:           60,
		cameraZ:       3,
		light:         []float64{o.Light.X, o.Light.Y, o.Light.Z},
		ambient:       o.Ambient,
		diffuse:       o.Diffuse,
		specular:      o.Specular,
		shininess:     o.Shininess,
		levels:        o.ShadeLevels,
		shaded:        o.Shaded,
		ditherPattern: "hash",
		palette:       "default",
		workers:       1,
		fps:           30,
		spin:          1,
	}
}

func (c *sceneConfig) addFlags(fs *pflag.FlagSet) {
	names := make([]string, 0, 5)
	for _, k := range render.Kinds() {
		names = append(names, k.String())
	}

	fs.StringVarP(&c.renderer, "renderer", "r", c.renderer, "renderer: "+strings.Join(names, ", "))
	fs.StringVarP(&c.mesh, "mesh", "m", c.mesh, "mesh: sphere, icosphere, cube, or a .glb/.gltf file")
	fs.IntVar(&c.subdiv, "subdiv", c.subdiv, "icosphere subdivision levels")
	fs.IntVar(&c.lat, "lat", c.lat, "UV sphere latitude steps")
	fs.IntVar(&c.lon, "lon", c.lon, "UV sphere longitude steps")

	fs.IntVar(&c.width, "width", c.width, "framebuffer width in pixels (window and snapshot)")
	fs.IntVar(&c.height, "height", c.height, "framebuffer height in pixels (window and snapshot)")
	fs.Float64Var(&c.scale, "scale", c.scale, "projection scale in pixels per unit at unit depth (0 fits the mesh)")
	fs.Float64Var(&c.fov, "fov", c.fov, "vertical field of view in degrees, used for clipping")
	fs.Float64Var(&c.cameraZ, "camera-z", c.cameraZ, "camera distance from the mesh")

	fs.Float64SliceVar(&c.light, "light", c.light, "direction toward the light as x,y,z")
	fs.Float64Var(&c.ambient, "ambient", c.ambient, "ambient light")
	fs.Float64Var(&c.diffuse, "diffuse", c.diffuse, "diffuse strength")
	fs.Float64Var(&c.specular, "specular", c.specular, "specular strength (phong)")
	fs.Float64Var(&c.shininess, "shininess", c.shininess, "specular exponent (phong)")
	fs.IntVar(&c.levels, "levels", c.levels, "shade levels of the z-buffered renderers")
	fs.BoolVar(&c.wired, "wired", c.wired, "hidden-line renderer draws outlines only")
	fs.BoolVar(&c.shaded, "shaded", c.shaded, "hidden-line renderer shades faces")
	fs.BoolVar(&c.dither, "dither", c.dither, "dither between shade levels")
	fs.StringVar(&c.ditherPattern, "dither-pattern", c.ditherPattern, "dither threshold: hash or bayer")
	fs.StringVar(&c.palette, "palette", c.palette, "palette: default, gray, amber, green, ocean, or ramp:#from:#to")
	fs.IntVar(&c.workers, "workers", c.workers, "row bands rasterized in parallel by the z-buffered renderers")

	fs.IntVar(&c.fps, "fps", c.fps, "target frames per second")
	fs.Float64Var(&c.spin, "spin", c.spin, "constant yaw in degrees per frame")
	fs.BoolVar(&c.axes, "axes", c.axes, "overlay the world axes")
	fs.BoolVar(&c.grid, "grid", c.grid, "overlay a ground grid below the mesh")
	fs.BoolVarP(&c.verbose, "verbose", "v", c.verbose, "log renderer statistics to stderr")
}

// options maps the flags onto renderer options.
func (c *sceneConfig) options() (render.Options, error) {
	if len(c.light) != 3 {
		return render.Options{}, fmt.Errorf("%w, got %d", errBadLight, len(c.light))
	}

	o := render.DefaultOptions()
	o.Light = math3d.V3(c.light[0], c.light[1], c.light[2])
	o.Ambient = c.ambient
	o.Diffuse = c.diffuse
	o.Specular = c.specular
	o.Shininess = c.shininess
	o.ShadeLevels = c.levels
	o.Wired = c.wired
	o.Shaded = c.shaded
	o.Dithered = c.dither
	o.Workers = c.workers

	switch strings.ToLower(c.ditherPattern) {
	case "hash":
		o.DitherPattern = render.DitherHash
	case "bayer":
		o.DitherPattern = render.DitherBayer
	default:
		return render.Options{}, fmt.Errorf("unknown dither pattern %q", c.ditherPattern)
	}
	return o, nil
}

// loadMesh builds a named primitive or loads a glTF file.
func (c *sceneConfig) loadMesh() (*models.Mesh, error) {
	if m, ok := models.Generate(strings.ToLower(c.mesh), c.subdiv, c.lat, c.lon); ok {
		return m, nil
	}

	switch strings.ToLower(filepath.Ext(c.mesh)) {
	case ".glb", ".gltf":
		m, err := models.NewGLTFLoader().Load(c.mesh)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("unknown mesh %q (use sphere, icosphere, cube, or a .glb/.gltf file)", c.mesh)
}
