package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/lowpoly/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// Options
	SmoothNormals bool    // recompute normals from face adjacency even when the file has them
	Center        bool    // translate the result so its bounding box is centered on the origin
	FitRadius     float64 // if > 0, uniformly rescale points so the bounding radius equals it
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Center:    true,
		FitRadius: 1,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
// Scene nodes are flattened, each primitive baked with its world matrix.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := l.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// FromDocument converts a decoded document into a single mesh.
func (l *GLTFLoader) FromDocument(doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh("", nil, nil)
	hasNormals := true

	add := func(meshIdx int, world math3d.Mat4) error {
		m := doc.Meshes[meshIdx]
		for _, prim := range m.Primitives {
			part, normals, err := readPrimitive(doc, prim)
			if err != nil {
				return fmt.Errorf("mesh %q: %w", m.Name, err)
			}
			if part == nil {
				continue
			}
			hasNormals = hasNormals && normals
			part.Transform(world)
			mesh.Append(part)
		}
		return nil
	}

	visited := false
	for _, root := range sceneRoots(doc) {
		if err := walkNodes(doc, root, math3d.Identity(), func(meshIdx int, world math3d.Mat4) error {
			visited = true
			return add(meshIdx, world)
		}); err != nil {
			return nil, err
		}
	}

	// Documents without a scene graph still carry drawable meshes.
	if !visited {
		for i := range doc.Meshes {
			if err := add(i, math3d.Identity()); err != nil {
				return nil, err
			}
		}
	}

	if len(mesh.Points) == 0 {
		return nil, ErrNoGeometry
	}
	if l.SmoothNormals || !hasNormals {
		mesh.CalculateSmoothNormals()
	}
	l.normalize(mesh)

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// normalize centers and rescales the mesh according to the loader options.
func (l *GLTFLoader) normalize(mesh *Mesh) {
	if l.Center {
		mesh.Transform(math3d.Translate(mesh.Center().Negate()))
	}
	if l.FitRadius > 0 {
		if r := mesh.LocalRadius(); r > 0 {
			s := l.FitRadius / r
			mesh.Transform(math3d.Scale(math3d.V3(s, s, s)))
		}
	}
}

// sceneRoots returns the root nodes of the default scene, or of the first
// scene when no default is set.
func sceneRoots(doc *gltf.Document) []int {
	if len(doc.Scenes) == 0 {
		return nil
	}
	scene := 0
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		scene = *doc.Scene
	}
	return doc.Scenes[scene].Nodes
}

// walkNodes visits node and its descendants depth-first, accumulating
// transforms, and calls fn for every node that references a mesh.
func walkNodes(doc *gltf.Document, idx int, parent math3d.Mat4, fn func(int, math3d.Mat4) error) error {
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node index %d out of range", idx)
	}
	node := doc.Nodes[idx]
	world := parent.Mul(nodeMatrix(node))

	if node.Mesh != nil {
		if *node.Mesh >= len(doc.Meshes) {
			return fmt.Errorf("node %d: mesh index %d out of range", idx, *node.Mesh)
		}
		if err := fn(*node.Mesh, world); err != nil {
			return err
		}
	}
	for _, child := range node.Children {
		if err := walkNodes(doc, child, world, fn); err != nil {
			return err
		}
	}
	return nil
}

// nodeMatrix returns the node's local matrix, either as given or composed
// from translation, rotation and scale.
func nodeMatrix(node *gltf.Node) math3d.Mat4 {
	if m := node.MatrixOrDefault(); m != [16]float64(math3d.Identity()) {
		return math3d.Mat4(m)
	}

	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	s := node.ScaleOrDefault()

	return math3d.Translate(math3d.V3(t[0], t[1], t[2])).
		Mul(math3d.FromQuat(r[0], r[1], r[2], r[3])).
		Mul(math3d.Scale(math3d.V3(s[0], s[1], s[2])))
}

// readPrimitive extracts geometry from one glTF primitive. Triangle lists
// become faces, line lists become explicit segments, and every other mode is
// skipped with a nil mesh. The second result reports whether the primitive
// carried its own normals.
func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*Mesh, bool, error) {
	if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != gltf.PrimitiveLines {
		return nil, false, nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, false, nil
	}

	posAcc, err := accessor(doc, posIdx)
	if err != nil {
		return nil, false, fmt.Errorf("positions: %w", err)
	}
	raw, err := modeler.ReadPosition(doc, posAcc, nil)
	if err != nil {
		return nil, false, fmt.Errorf("read positions: %w", err)
	}
	points := make([]math3d.Vec3, len(raw))
	for i, p := range raw {
		points[i] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}

	part := &Mesh{Points: points, Scale: 1}

	hasNormals := false
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normAcc, err := accessor(doc, normIdx)
		if err != nil {
			return nil, false, fmt.Errorf("normals: %w", err)
		}
		rawN, err := modeler.ReadNormal(doc, normAcc, nil)
		if err != nil {
			return nil, false, fmt.Errorf("read normals: %w", err)
		}
		if len(rawN) == len(points) {
			part.Normals = make([]math3d.Vec3, len(rawN))
			for i, n := range rawN {
				part.Normals[i] = math3d.V3(float64(n[0]), float64(n[1]), float64(n[2])).Normalize()
			}
			hasNormals = true
		}
	}
	if !hasNormals {
		part.Normals = RadialNormals(points)
	}

	indices, err := primitiveIndices(doc, prim, len(points))
	if err != nil {
		return nil, false, err
	}
	for _, i := range indices {
		if int(i) >= len(points) {
			return nil, false, fmt.Errorf("index %d out of range [0, %d)", i, len(points))
		}
	}

	if prim.Mode == gltf.PrimitiveLines {
		for i := 0; i+1 < len(indices); i += 2 {
			part.Segments = append(part.Segments, [2]int{int(indices[i]), int(indices[i+1])})
		}
		return part, hasNormals, nil
	}

	// glTF faces are counter-clockwise seen from outside, so cross(v1-v0, v2-v0)
	// is the outward normal there. Swapping the last two indices gives the
	// inward-facing cross product this package expects.
	for i := 0; i+2 < len(indices); i += 3 {
		part.Faces = append(part.Faces, [3]int{
			int(indices[i]),
			int(indices[i+2]), // swapped
			int(indices[i+1]), // swapped
		})
	}
	return part, hasNormals, nil
}

// primitiveIndices returns the primitive's index list, or the sequential
// indices 0..n-1 when the primitive is not indexed.
func primitiveIndices(doc *gltf.Document, prim *gltf.Primitive, n int) ([]uint32, error) {
	if prim.Indices == nil {
		seq := make([]uint32, n)
		for i := range seq {
			seq[i] = uint32(i)
		}
		return seq, nil
	}

	acc, err := accessor(doc, *prim.Indices)
	if err != nil {
		return nil, fmt.Errorf("indices: %w", err)
	}
	indices, err := modeler.ReadIndices(doc, acc, nil)
	if err != nil {
		return nil, fmt.Errorf("read indices: %w", err)
	}
	return indices, nil
}

// accessor returns accessor idx, or an error when the document has none
// at that index.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range [0, %d)", idx, len(doc.Accessors))
	}
	return doc.Accessors[idx], nil
}
