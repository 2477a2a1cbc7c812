package csg

// Boolean volume operations. Each binary operation builds one BSP tree
// per operand, clips the other operand's polygons against it, and
// assembles the result from the surviving fragments. Operands with
// disjoint bounding boxes short-circuit to trivial results without any
// BSP work.

// Union returns a mesh enclosing the combined volume of m and other.
// The boundary surface shared by both operands is contributed by other
// alone, so it appears exactly once in the result.
func (m *Mesh) Union(other *Mesh) *Mesh {
	if !m.Bounds().Intersects(other.Bounds()) {
		return NewMesh(concatPolygons(m.polygons, other.polygons))
	}
	var id int
	out := newBSP(other.polygons, &id).clip(m.polygons, greaterThan, &id)
	out = append(out, newBSP(m.polygons, &id).clip(other.polygons, greaterThanEqual, &id)...)
	return NewMesh(out)
}

// Subtract returns a mesh enclosing the volume of m not enclosed by
// other. The carved surface is made of other's polygons clipped to m's
// interior and inverted.
func (m *Mesh) Subtract(other *Mesh) *Mesh {
	if !m.Bounds().Intersects(other.Bounds()) {
		return m
	}
	var id int
	out := newBSP(other.polygons, &id).clip(m.polygons, greaterThan, &id)
	carved := newBSP(m.polygons, &id).clip(other.polygons, lessThan, &id)
	return NewMesh(append(out, invertedPolygons(carved)...))
}

// Intersect returns a mesh enclosing the volume common to m and other.
func (m *Mesh) Intersect(other *Mesh) *Mesh {
	if !m.Bounds().Intersects(other.Bounds()) {
		return NewMesh(nil)
	}
	var id int
	out := newBSP(other.polygons, &id).clip(m.polygons, lessThan, &id)
	out = append(out, newBSP(m.polygons, &id).clip(other.polygons, lessThanEqual, &id)...)
	return NewMesh(out)
}

// Xor returns a mesh enclosing the volume inside exactly one of m and
// other: the concatenation of m minus other and other minus m.
func (m *Mesh) Xor(other *Mesh) *Mesh {
	if !m.Bounds().Intersects(other.Bounds()) {
		return NewMesh(concatPolygons(m.polygons, other.polygons))
	}
	var id int
	mine := newBSP(m.polygons, &id)
	theirs := newBSP(other.polygons, &id)
	out := theirs.clip(m.polygons, greaterThan, &id)
	out = append(out, invertedPolygons(mine.clip(other.polygons, lessThan, &id))...)
	out = append(out, invertedPolygons(theirs.clip(m.polygons, lessThan, &id))...)
	out = append(out, mine.clip(other.polygons, greaterThan, &id)...)
	return NewMesh(out)
}

// Stencil returns m's shape with the region enclosed by other repainted:
// fragments of m inside or on the boundary of other take the material of
// other's first polygon. Fragments keep their own material when other is
// empty or its first polygon's material is nil.
func (m *Mesh) Stencil(other *Mesh) *Mesh {
	if !m.Bounds().Intersects(other.Bounds()) {
		return m
	}
	var id int
	bsp := newBSP(other.polygons, &id)
	out := bsp.clip(m.polygons, greaterThan, &id)
	var material Material
	if len(other.polygons) > 0 {
		material = other.polygons[0].material
	}
	for _, p := range bsp.clip(m.polygons, lessThanEqual, &id) {
		if material != nil {
			p = p.WithMaterial(material)
		}
		out = append(out, p)
	}
	return NewMesh(out)
}

// Split cuts the mesh along plane. Polygons coplanar with the cut go to
// the front mesh when they face the same way as the plane, to the back
// mesh otherwise. A side with no polygons is returned as nil.
func (m *Mesh) Split(plane Plane) (front, back *Mesh) {
	var id int
	var coplanar, f, b []*Polygon
	for _, p := range m.polygons {
		p.split(plane, &coplanar, &f, &b, &id)
	}
	for _, p := range coplanar {
		if p.plane.Normal.Dot(plane.Normal) > 0 {
			f = append(f, p)
		} else {
			b = append(b, p)
		}
	}
	if len(f) > 0 {
		front = NewMesh(f)
	}
	if len(b) > 0 {
		back = NewMesh(b)
	}
	return front, back
}

// Clip cuts the mesh along plane and discards everything behind it. If
// fill is non-nil, the cut cross-section is capped with polygons carrying
// that material, facing the back of the plane.
func (m *Mesh) Clip(plane Plane, fill Material) *Mesh {
	front, _ := m.Split(plane)
	if front == nil {
		return NewMesh(nil)
	}
	if fill == nil {
		return front
	}

	// A square on the cut plane large enough to cover the whole
	// cross-section: center and radius come from the clipped mesh's
	// bounds projected onto the plane.
	bounds := front.Bounds()
	center := projectOnPlane(bounds.Center(), plane)
	var radius float64
	for _, corner := range bounds.Corners() {
		d := projectOnPlane(corner, plane).Sub(center).Length()
		if d > radius {
			radius = d
		}
	}
	if radius <= epsilon {
		return front
	}
	u, v := planeBasis(plane.Normal)
	normal := plane.Normal.Negated()
	square := make([]Vertex, 0, 4)
	for _, c := range []Vector{
		u.Add(v), u.Sub(v), u.Add(v).Negated(), v.Sub(u),
	} {
		square = append(square, Vertex{
			Position: center.Add(c.Scaled(radius)),
			Normal:   normal,
		})
	}
	face := newPolygonUnchecked(square, plane.Inverted(), true, fill, 0)

	var id int
	caps := newBSP(m.polygons, &id).clip([]*Polygon{face}, lessThan, &id)
	return NewMesh(append(front.polygons, caps...))
}

// projectOnPlane returns the closest point to p on plane.
func projectOnPlane(p Vector, plane Plane) Vector {
	return p.Sub(plane.Normal.Scaled(plane.distance(p)))
}

// planeBasis returns two unit vectors spanning the plane with the given
// normal, with u×v = normal.
func planeBasis(normal Vector) (u, v Vector) {
	axis := Vector{X: 1}
	if dominantAxis(normal) == 0 {
		axis = Vector{Y: 1}
	}
	u = normal.Cross(axis).Normalized()
	v = normal.Cross(u)
	return u, v
}

// Union combines the volumes of all meshes. Meshes with intersecting
// bounds are folded together with the binary operation; disjoint groups
// are concatenated without any clipping.
func Union(meshes ...*Mesh) *Mesh {
	return multimerge(meshes, (*Mesh).Union)
}

// Xor combines all meshes pairwise with the symmetric difference.
// Disjoint groups are concatenated without any clipping.
func Xor(meshes ...*Mesh) *Mesh {
	return multimerge(meshes, (*Mesh).Xor)
}

// Difference subtracts every subsequent mesh from the first.
func Difference(meshes ...*Mesh) *Mesh {
	return reduce(meshes, (*Mesh).Subtract)
}

// Intersection intersects the first mesh with every subsequent one.
func Intersection(meshes ...*Mesh) *Mesh {
	return reduce(meshes, (*Mesh).Intersect)
}

// Stencil repaints the first mesh with every subsequent one in turn.
func Stencil(meshes ...*Mesh) *Mesh {
	return reduce(meshes, (*Mesh).Stencil)
}

// multimerge folds meshes together with op wherever bounding boxes
// intersect. op must be commutative and associative on meshes with
// disjoint bounds: groups that never intersect are only ever
// concatenated, in whatever order the scan visits them.
func multimerge(meshes []*Mesh, op func(a, b *Mesh) *Mesh) *Mesh {
	switch len(meshes) {
	case 0:
		return NewMesh(nil)
	case 1:
		return meshes[0]
	}
	type boundedMesh struct {
		mesh   *Mesh
		bounds Bounds
	}
	items := make([]boundedMesh, len(meshes))
	for i, m := range meshes {
		items[i] = boundedMesh{m, m.Bounds()}
	}
	var out []*Polygon
	for i := 0; i < len(items); i++ {
		acc := items[i]
		for j := i + 1; j < len(items); {
			if !acc.bounds.Intersects(items[j].bounds) {
				j++
				continue
			}
			acc.mesh = op(acc.mesh, items[j].mesh)
			acc.bounds = acc.mesh.Bounds()
			items = append(items[:j], items[j+1:]...)
			// The accumulator's bounds grew: rescan the meshes already
			// passed over at this index.
			j = i + 1
		}
		out = append(out, acc.mesh.polygons...)
	}
	return NewMesh(out)
}

// reduce left-folds meshes with op. The binary operations already
// short-circuit on disjoint bounds, so no bounds test is needed here.
func reduce(meshes []*Mesh, op func(a, b *Mesh) *Mesh) *Mesh {
	if len(meshes) == 0 {
		return NewMesh(nil)
	}
	acc := meshes[0]
	for _, m := range meshes[1:] {
		acc = op(acc, m)
	}
	return acc
}

func concatPolygons(a, b []*Polygon) []*Polygon {
	out := make([]*Polygon, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
