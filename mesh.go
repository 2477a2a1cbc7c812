package csg

// Mesh is an unordered collection of polygons describing the surface of a
// solid. Boolean operations expect the surface to be closed and
// orientable, with polygons wound anticlockwise as seen from outside the
// solid. Polygons are independent: the mesh keeps no adjacency or index
// structure, only a lazily computed bounding box.
type Mesh struct {
	polygons []*Polygon
	bounds   *Bounds
}

// NewMesh wraps a list of polygons into a mesh. The polygons are not
// validated against each other; closing and orienting the surface is the
// caller's responsibility.
func NewMesh(polygons []*Polygon) *Mesh {
	return &Mesh{polygons: polygons}
}

// Polygons returns the mesh's polygons. The returned slice must not be
// modified.
func (m *Mesh) Polygons() []*Polygon {
	return m.polygons
}

// Bounds returns the axis-aligned bounding box over all vertex positions.
// It is computed on first use and cached.
func (m *Mesh) Bounds() Bounds {
	if m.bounds == nil {
		b := emptyBounds()
		for _, p := range m.polygons {
			for _, v := range p.vertices {
				b = b.extended(v.Position)
			}
		}
		m.bounds = &b
	}
	return *m.bounds
}

// Inverted returns the mesh turned inside out: every polygon inverted, so
// the solid's interior and exterior swap.
func (m *Mesh) Inverted() *Mesh {
	return NewMesh(invertedPolygons(m.polygons))
}

// Translated returns the mesh moved by offset.
func (m *Mesh) Translated(offset Vector) *Mesh {
	polygons := make([]*Polygon, len(m.polygons))
	for i, p := range m.polygons {
		polygons[i] = p.Translated(offset)
	}
	return NewMesh(polygons)
}

// Rotated returns the mesh rotated by r around the origin.
func (m *Mesh) Rotated(r Rotation) *Mesh {
	polygons := make([]*Polygon, len(m.polygons))
	for i, p := range m.polygons {
		polygons[i] = p.Rotated(r)
	}
	return NewMesh(polygons)
}

// Scaled returns the mesh scaled uniformly by f relative to the origin.
func (m *Mesh) Scaled(f float64) *Mesh {
	polygons := make([]*Polygon, len(m.polygons))
	for i, p := range m.polygons {
		polygons[i] = p.Scaled(f)
	}
	return NewMesh(polygons)
}

// Merged returns the mesh with mergeable polygon pairs greedily joined:
// sibling fragments produced by earlier splits, and untouched coplanar
// polygons sharing a material. Use it to compact the output of boolean
// operations.
func (m *Mesh) Merged() *Mesh {
	polygons := append([]*Polygon(nil), m.polygons...)
	for i := 0; i < len(polygons); {
		merged := false
		for j := i + 1; j < len(polygons); j++ {
			if joined := polygons[i].Merge(polygons[j]); joined != nil {
				polygons[i] = joined
				polygons = append(polygons[:j], polygons[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			i++
		}
	}
	return NewMesh(polygons)
}

func invertedPolygons(polygons []*Polygon) []*Polygon {
	inverted := make([]*Polygon, len(polygons))
	for i, p := range polygons {
		inverted[i] = p.Inverted()
	}
	return inverted
}
