// Package models provides the mesh data model consumed by the renderers,
// together with procedural generators and a glTF loader that populate it.
package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// ErrNoGeometry is returned when a mesh has no points or no faces.
var ErrNoGeometry = errors.New("mesh has no geometry")

// Mesh represents a triangle mesh in local space plus its local transform.
//
// Faces are wound so that cross(v1-v0, v2-v0), taken in camera space, has a
// positive z component when the face looks toward the camera. The outward
// surface normal is therefore cross(v2-v0, v1-v0).
type Mesh struct {
	Name     string
	Points   []math3d.Vec3
	Faces    [][3]int
	Segments [][2]int // optional explicit edge list, used by the wireframe path
	Normals  []math3d.Vec3

	// Local transform: uniform scale, then rotation (degrees per axis), then
	// translation.
	Position math3d.Vec3
	Rotation math3d.Vec3
	Scale    float64

	// Bounding box (calculated on construction)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates a mesh from points and faces with an identity transform.
// Normals default to the radial direction of each point.
func NewMesh(name string, points []math3d.Vec3, faces [][3]int) *Mesh {
	m := &Mesh{
		Name:    name,
		Points:  points,
		Faces:   faces,
		Normals: RadialNormals(points),
		Scale:   1,
	}
	m.CalculateBounds()
	return m
}

// RadialNormals returns the direction of every point from the local origin.
// This is only a correct surface normal for meshes centered on the origin,
// such as spheres. A point at the origin gets (0, 0, 1).
func RadialNormals(points []math3d.Vec3) []math3d.Vec3 {
	normals := make([]math3d.Vec3, len(points))
	for i, p := range points {
		normals[i] = p.Normalize()
	}
	return normals
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Points) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Points[0]
	m.BoundsMax = m.Points[0]

	for _, p := range m.Points[1:] {
		m.BoundsMin = m.BoundsMin.Min(p)
		m.BoundsMax = m.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// LocalRadius returns the distance from the bounding box center to the
// farthest point, in local units.
func (m *Mesh) LocalRadius() float64 {
	c := m.Center()
	var r float64
	for _, p := range m.Points {
		r = math.Max(r, p.Distance(c))
	}
	return r
}

// LocalToWorld scales, rotates and translates a local point into world space.
func (m *Mesh) LocalToWorld(p math3d.Vec3) math3d.Vec3 {
	rot := math3d.RotationXYZ(m.Rotation.X, m.Rotation.Y, m.Rotation.Z)
	return rot.MulVec3(p.Scale(m.Scale)).Add(m.Position)
}

// TransformedPoints writes every point in world space into dst, growing it
// as needed, and returns it.
func (m *Mesh) TransformedPoints(dst []math3d.Vec3) []math3d.Vec3 {
	dst = resize(dst, len(m.Points))
	rot := math3d.RotationXYZ(m.Rotation.X, m.Rotation.Y, m.Rotation.Z)
	for i, p := range m.Points {
		dst[i] = rot.MulVec3(p.Scale(m.Scale)).Add(m.Position)
	}
	return dst
}

// TransformedNormals writes every vertex normal rotated into world space into
// dst and returns it. Uniform scale and translation do not affect normals.
func (m *Mesh) TransformedNormals(dst []math3d.Vec3) []math3d.Vec3 {
	dst = resize(dst, len(m.Points))
	rot := math3d.RotationXYZ(m.Rotation.X, m.Rotation.Y, m.Rotation.Z)
	for i := range m.Points {
		n := math3d.Forward()
		if i < len(m.Normals) {
			n = m.Normals[i]
		}
		if m.Scale < 0 {
			n = n.Negate()
		}
		dst[i] = rot.MulVec3(n)
	}
	return dst
}

// BoundingSphere returns a world-space sphere enclosing the transformed mesh.
func (m *Mesh) BoundingSphere() (center math3d.Vec3, radius float64) {
	return m.LocalToWorld(m.Center()), m.LocalRadius() * math.Abs(m.Scale)
}

// CalculateSmoothNormals replaces the vertex normals with the normalized sum
// of the outward normals of every adjacent face. Face area weights the sum.
func (m *Mesh) CalculateSmoothNormals() {
	normals := make([]math3d.Vec3, len(m.Points))

	for _, f := range m.Faces {
		v0 := m.Points[f[0]]
		v1 := m.Points[f[1]]
		v2 := m.Points[f[2]]

		n := v2.Sub(v0).Cross(v1.Sub(v0)) // Don't normalize yet

		normals[f[0]] = normals[f[0]].Add(n)
		normals[f[1]] = normals[f[1]].Add(n)
		normals[f[2]] = normals[f[2]].Add(n)
	}

	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.Normals = normals
}

// Transform bakes a matrix into the points and normals. A mirroring matrix
// also flips face winding so faces keep facing outward.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Points {
		m.Points[i] = mat.MulVec3(m.Points[i])
	}
	for i := range m.Normals {
		m.Normals[i] = mat.MulVec3Dir(m.Normals[i]).Normalize()
	}
	if mat.Determinant3() < 0 {
		for i := range m.Faces {
			f := &m.Faces[i]
			f[1], f[2] = f[2], f[1]
		}
	}
	m.CalculateBounds()
}

// Append merges other's geometry into m, offsetting its indices. Both meshes
// are assumed to share the same local space.
func (m *Mesh) Append(other *Mesh) {
	base := len(m.Points)
	m.Points = append(m.Points, other.Points...)

	normals := other.Normals
	if len(normals) != len(other.Points) {
		normals = RadialNormals(other.Points)
	}
	m.Normals = append(m.Normals, normals...)

	for _, f := range other.Faces {
		m.Faces = append(m.Faces, [3]int{f[0] + base, f[1] + base, f[2] + base})
	}
	for _, s := range other.Segments {
		m.Segments = append(m.Segments, [2]int{s[0] + base, s[1] + base})
	}
	m.CalculateBounds()
}

// Validate reports whether every face and segment index refers to a point
// and the mesh has something to draw. Renderers do not call it.
func (m *Mesh) Validate() error {
	if len(m.Points) == 0 || (len(m.Faces) == 0 && len(m.Segments) == 0) {
		return ErrNoGeometry
	}
	n := len(m.Points)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d: index %d out of range [0, %d)", i, idx, n)
			}
		}
	}
	for i, s := range m.Segments {
		for _, idx := range s {
			if idx < 0 || idx >= n {
				return fmt.Errorf("segment %d: index %d out of range [0, %d)", i, idx, n)
			}
		}
	}
	if len(m.Normals) != 0 && len(m.Normals) != n {
		return fmt.Errorf("have %d normals for %d points", len(m.Normals), n)
	}
	return nil
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Points)
}

// GetFace returns the vertex indices for face i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i]
}

// SegmentCount returns the number of explicit edges.
// Implements render.SegmentedMesh interface.
func (m *Mesh) SegmentCount() int {
	return len(m.Segments)
}

// GetSegment returns the vertex indices for explicit edge i.
func (m *Mesh) GetSegment(i int) [2]int {
	return m.Segments[i]
}

func resize(s []math3d.Vec3, n int) []math3d.Vec3 {
	if cap(s) < n {
		return make([]math3d.Vec3, n)
	}
	return s[:n]
}
