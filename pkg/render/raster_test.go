package render

import (
	"math"
	"testing"
)

func TestBarycentric(t *testing.T) {
	tests := []struct {
		name       string
		px, py     float64
		w0, w1, w2 float64
	}{
		{"vertex 0", 0, 0, 1, 0, 0},
		{"vertex 1", 1, 0, 0, 1, 0},
		{"vertex 2", 0, 1, 0, 0, 1},
		{"centroid", 1.0 / 3, 1.0 / 3, 1.0 / 3, 1.0 / 3, 1.0 / 3},
		{"outside", 1, 1, -1, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w0, w1, w2, ok := Barycentric(0, 0, 1, 0, 0, 1, tc.px, tc.py)
			if !ok {
				t.Fatal("triangle reported degenerate")
			}
			if math.Abs(w0-tc.w0) > 1e-9 || math.Abs(w1-tc.w1) > 1e-9 || math.Abs(w2-tc.w2) > 1e-9 {
				t.Errorf("weights = (%v, %v, %v), want (%v, %v, %v)", w0, w1, w2, tc.w0, tc.w1, tc.w2)
			}
			if math.Abs(w0+w1+w2-1) > 1e-12 {
				t.Errorf("weights sum to %v", w0+w1+w2)
			}
		})
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	if _, _, _, ok := Barycentric(0, 0, 1, 1, 2, 2, 0.5, 0.5); ok {
		t.Error("collinear triangle not reported degenerate")
	}
}

func TestSetupTri(t *testing.T) {
	pt := func(x, y int) screenPoint { return screenPoint{x, y, true} }

	tests := []struct {
		name   string
		p      [3]screenPoint
		wantOK bool
	}{
		{"inside", [3]screenPoint{pt(1, 1), pt(8, 1), pt(1, 8)}, true},
		{"collinear", [3]screenPoint{pt(0, 0), pt(4, 4), pt(8, 8)}, false},
		{"off screen", [3]screenPoint{pt(20, 20), pt(30, 20), pt(20, 30)}, false},
		{"partly off", [3]screenPoint{pt(-5, -5), pt(5, -5), pt(-5, 5)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tri, ok := setupTri(tc.p[0], tc.p[1], tc.p[2], 10, 10)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && (tri.minX < 0 || tri.minY < 0 || tri.maxX > 9 || tri.maxY > 9) {
				t.Errorf("bounds (%d,%d)-(%d,%d) not clamped", tri.minX, tri.minY, tri.maxX, tri.maxY)
			}
		})
	}
}

func TestTraverseRowBands(t *testing.T) {
	tri, ok := setupTri(screenPoint{0, 0, true}, screenPoint{16, 0, true}, screenPoint{0, 16, true}, 16, 16)
	if !ok {
		t.Fatal("setupTri rejected a valid triangle")
	}

	count := func(lo, hi int) int {
		n := 0
		tri.traverse(lo, hi, func(x, y int, w0, w1, w2 float64) {
			if y < lo || y > hi {
				t.Errorf("row %d outside band [%d, %d]", y, lo, hi)
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				t.Errorf("negative weight at (%d, %d)", x, y)
			}
			n++
		})
		return n
	}

	whole := count(0, 15)
	if whole == 0 {
		t.Fatal("no pixels covered")
	}
	if split := count(0, 5) + count(6, 10) + count(11, 15); split != whole {
		t.Errorf("bands cover %d pixels, whole pass %d", split, whole)
	}
}

func TestFillGouraudConstant(t *testing.T) {
	seen := 0
	fillGouraud(
		gouraudVertex{x: 2, y: 2, c: 0.5},
		gouraudVertex{x: 12, y: 4, c: 0.5},
		gouraudVertex{x: 5, y: 12, c: 0.5},
		16, 16,
		func(x, y int, c float64) {
			seen++
			if math.Abs(c-0.5) > 1e-12 {
				t.Fatalf("c at (%d, %d) = %v, want 0.5", x, y, c)
			}
		},
	)
	if seen == 0 {
		t.Error("no pixels shaded")
	}
}

func TestFillGouraudInterpolates(t *testing.T) {
	// Intensity follows x from 0 at the left edge to 1 at the right.
	var got [11]float64
	fillGouraud(
		gouraudVertex{x: 0, y: 0, c: 0},
		gouraudVertex{x: 10, y: 0, c: 1},
		gouraudVertex{x: 0, y: 10, c: 0},
		16, 16,
		func(x, y int, c float64) {
			if y == 0 {
				got[x] = c
			}
		},
	)
	for x, c := range got {
		if want := float64(x) / 10; math.Abs(c-want) > 1e-9 {
			t.Errorf("row 0 x=%d: c = %v, want %v", x, c, want)
		}
	}
}

func TestFillGouraudClampsToSurface(t *testing.T) {
	// A vertex far off screen, as projected from just in front of the eye.
	const w, h = 40, 30
	seen := 0
	fillGouraud(
		gouraudVertex{x: 5, y: 5, c: 0.5},
		gouraudVertex{x: 5e10, y: 5, c: 0.5},
		gouraudVertex{x: 5, y: 2e10, c: 0.5},
		w, h,
		func(x, y int, c float64) {
			if x < 0 || x >= w || y < 0 || y >= h {
				t.Fatalf("shade called off surface at (%d, %d)", x, y)
			}
			seen++
		},
	)
	// Everything right of and below (5, 5) is covered.
	if want := (w - 5) * (h - 5); seen != want {
		t.Errorf("shaded %d pixels, want %d", seen, want)
	}
}
