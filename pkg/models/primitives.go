package models

import (
	"math"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// UVSphere generates a latitude/longitude sphere. Points run from the north
// pole (lat 0) to the south pole (lat latSteps) with lonSteps points per
// ring, so the mesh has (latSteps+1)*lonSteps points and two triangles for
// every (lat, lon) cell. Pole rings repeat the pole point; the triangles
// touching them are degenerate and skipped by the rasterizers.
func UVSphere(radius float64, latSteps, lonSteps int) *Mesh {
	latSteps = max(latSteps, 1)
	lonSteps = max(lonSteps, 3)

	points := make([]math3d.Vec3, 0, (latSteps+1)*lonSteps)
	for lat := range latSteps + 1 {
		sinTheta, cosTheta := math.Sincos(math.Pi * float64(lat) / float64(latSteps))
		for lon := range lonSteps {
			sinPhi, cosPhi := math.Sincos(2 * math.Pi * float64(lon) / float64(lonSteps))
			points = append(points, math3d.V3(
				radius*sinTheta*cosPhi,
				radius*cosTheta,
				radius*sinTheta*sinPhi,
			))
		}
	}

	idx := func(lat, lon int) int {
		return lat*lonSteps + lon%lonSteps
	}

	faces := make([][3]int, 0, latSteps*lonSteps*2)
	for lat := range latSteps {
		for lon := range lonSteps {
			i0 := idx(lat, lon)
			i1 := idx(lat+1, lon)
			i2 := idx(lat, lon+1)
			i3 := idx(lat+1, lon+1)

			faces = append(faces, [3]int{i0, i1, i2}, [3]int{i2, i1, i3})
		}
	}

	return NewMesh("uvsphere", points, faces)
}

// icosahedron faces, wound for the package's facing convention.
var icosahedronFaces = [][3]int{
	{0, 5, 11}, {0, 1, 5}, {0, 7, 1}, {0, 10, 7}, {0, 11, 10},
	{1, 9, 5}, {5, 4, 11}, {11, 2, 10}, {10, 6, 7}, {7, 8, 1},
	{3, 4, 9}, {3, 2, 4}, {3, 6, 2}, {3, 8, 6}, {3, 9, 8},
	{4, 5, 9}, {2, 11, 4}, {6, 10, 2}, {8, 7, 6}, {9, 1, 8},
}

// Icosphere generates a sphere by repeatedly splitting the faces of a regular
// icosahedron in four and pushing the new points onto the sphere. Each level
// multiplies the face count by four, starting from 20.
func Icosphere(subdivisions int, radius float64) *Mesh {
	t := (1 + math.Sqrt(5)) / 2

	base := []math3d.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}

	points := make([]math3d.Vec3, len(base))
	for i, p := range base {
		points[i] = p.Normalize().Scale(radius)
	}

	faces := make([][3]int, len(icosahedronFaces))
	copy(faces, icosahedronFaces)

	// Keyed on the sorted pair so both faces sharing an edge get one midpoint.
	cache := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if i, ok := cache[key]; ok {
			return i
		}
		m := points[a].Add(points[b]).Scale(0.5).Normalize().Scale(radius)
		points = append(points, m)
		cache[key] = len(points) - 1
		return len(points) - 1
	}

	for range max(subdivisions, 0) {
		next := make([][3]int, 0, len(faces)*4)
		clear(cache)

		for _, f := range faces {
			a := midpoint(f[0], f[1])
			b := midpoint(f[1], f[2])
			c := midpoint(f[2], f[0])

			next = append(next,
				[3]int{f[0], a, c},
				[3]int{f[1], b, a},
				[3]int{f[2], c, b},
				[3]int{a, b, c},
			)
		}
		faces = next
	}

	return NewMesh("icosphere", points, faces)
}

// Cube generates an axis-aligned cube centered on the origin with explicit
// edges, so the wireframe path draws its twelve edges rather than the face
// diagonals.
func Cube(size float64) *Mesh {
	h := size / 2
	points := []math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}

	quads := [][4]int{
		{0, 1, 2, 3}, // -z
		{5, 4, 7, 6}, // +z
		{4, 0, 3, 7}, // -x
		{1, 5, 6, 2}, // +x
		{4, 5, 1, 0}, // -y
		{3, 2, 6, 7}, // +y
	}
	faces := make([][3]int, 0, len(quads)*2)
	for _, q := range quads {
		faces = append(faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}

	m := NewMesh("cube", points, faces)
	m.Segments = [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	return m
}

// Generate builds a named primitive. It returns false for unknown names.
func Generate(name string, subdivisions, latSteps, lonSteps int) (*Mesh, bool) {
	switch name {
	case "sphere", "uvsphere":
		return UVSphere(1, latSteps, lonSteps), true
	case "icosphere":
		return Icosphere(subdivisions, 1), true
	case "cube":
		return Cube(1.5), true
	}
	return nil, false
}
