package render

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"wireframe", KindWireframe, false},
		{"wire", KindWireframe, false},
		{"HiddenLine", KindHiddenLine, false},
		{"flat", KindHiddenLine, false},
		{"gouraud", KindScanlineGouraud, false},
		{" zbuffer ", KindZBufferGouraud, false},
		{"zgouraud", KindZBufferGouraud, false},
		{"phong", KindZBufferPhong, false},
		{"raytrace", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr && !errors.Is(err, ErrUnknownKind) {
				t.Errorf("err = %v, want ErrUnknownKind", err)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("unknown kind String = %q", got)
	}
}

func TestNewErrors(t *testing.T) {
	cam := NewCamera()
	fb := NewFramebuffer(16, 16)

	tests := []struct {
		name string
		kind Kind
		cam  *Camera
		surf Surface
		opts func(*Options)
		want error
	}{
		{"nil camera", KindWireframe, nil, fb, nil, ErrNilCamera},
		{"nil surface", KindWireframe, cam, nil, nil, ErrNilSurface},
		{"one shade level", KindZBufferGouraud, cam, fb, func(o *Options) { o.ShadeLevels = 1 }, ErrInvalidShadeLevels},
		{"zero shininess", KindZBufferPhong, cam, fb, func(o *Options) { o.Shininess = 0 }, ErrInvalidShininess},
		{"unknown kind", Kind(99), cam, fb, nil, ErrUnknownKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := DefaultOptions()
			if tc.opts != nil {
				tc.opts(&o)
			}
			_, err := New(tc.kind, tc.cam, tc.surf, o)
			if !errors.Is(err, tc.want) {
				t.Errorf("New = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestConstructorsValidate(t *testing.T) {
	cam := NewCamera()
	fb := NewFramebuffer(16, 16)
	bare := Options{Ambient: 1}

	constructors := []struct {
		name string
		build func(*Camera, Surface, Options) error
	}{
		{"wireframe", func(c *Camera, s Surface, o Options) error {
			_, err := NewWireframe(c, s, o)
			return err
		}},
		{"hiddenline", func(c *Camera, s Surface, o Options) error {
			_, err := NewHiddenLine(c, s, o)
			return err
		}},
		{"scanline", func(c *Camera, s Surface, o Options) error {
			_, err := NewScanlineGouraud(c, s, o)
			return err
		}},
		{"zbuffer", func(c *Camera, s Surface, o Options) error {
			_, err := NewZBuffer(c, s, o, ShadeGouraud)
			return err
		}},
	}

	for _, tc := range constructors {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.build(cam, fb, bare); !errors.Is(err, ErrInvalidShadeLevels) {
				t.Errorf("zero options: err = %v, want %v", err, ErrInvalidShadeLevels)
			}
			if err := tc.build(nil, fb, DefaultOptions()); !errors.Is(err, ErrNilCamera) {
				t.Errorf("nil camera: err = %v, want %v", err, ErrNilCamera)
			}
			if err := tc.build(cam, nil, DefaultOptions()); !errors.Is(err, ErrNilSurface) {
				t.Errorf("nil surface: err = %v, want %v", err, ErrNilSurface)
			}
			if err := tc.build(cam, fb, DefaultOptions()); err != nil {
				t.Errorf("default options: %v", err)
			}
		})
	}
}

func TestNewVariants(t *testing.T) {
	cam := NewCamera()
	fb := NewFramebuffer(16, 16)

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			r := mustNew(t, k, cam, fb, DefaultOptions())

			_, hasDepth := r.(DepthClearer)
			wantDepth := k == KindZBufferGouraud || k == KindZBufferPhong
			if hasDepth != wantDepth {
				t.Errorf("DepthClearer = %v, want %v", hasDepth, wantDepth)
			}
		})
	}
}

func TestOptionsValidateDefaults(t *testing.T) {
	o := DefaultOptions()
	o.ScanlineLevels = 0
	o.PaletteSize = 0
	o.Workers = -3
	o.Light.X, o.Light.Y, o.Light.Z = 0, 0, 0

	if err := o.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if o.ScanlineLevels != 8 || o.PaletteSize != 16 || o.Workers != 1 {
		t.Errorf("defaults = %d levels, %d colors, %d workers", o.ScanlineLevels, o.PaletteSize, o.Workers)
	}
	if o.Light.Z != 1 {
		t.Errorf("zero light normalized to %v, want (0, 0, 1)", o.Light)
	}
}
