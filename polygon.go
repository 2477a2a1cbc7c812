package csg

import (
	assert "github.com/arl/assertgo"
)

// Polygon is a planar, possibly non-convex face: an ordered ring of three
// or more vertices, wound anticlockwise as seen from the front of its
// plane.
//
// Polygons are immutable. Operations that "modify" a polygon (inverting,
// re-tagging the material, transforming) return a new one; the vertex ring
// may be shared between the original and the copy.
type Polygon struct {
	vertices []Vertex
	plane    Plane
	convex   bool
	material Material

	// id tags the fragments of a split so that Merge can later recognize
	// sibling fragments of the same parent. 0 means the polygon was never
	// split.
	id int
}

// NewPolygon builds a polygon from the given vertex ring and material.
// It returns nil if the ring has fewer than 3 vertices, is degenerate
// (adjacent coincident vertices, no enclosed area) or is not planar
// within epsilon.
func NewPolygon(vertices []Vertex, material Material) *Polygon {
	if verticesAreDegenerate(vertices) {
		return nil
	}
	positions := make([]Vector, len(vertices))
	for i, v := range vertices {
		positions[i] = v.Position
	}
	plane := planeFromPoints(positions)
	if plane == nil {
		return nil
	}
	for _, pos := range positions {
		if plane.comparePoint(pos) != planeCoplanar {
			return nil
		}
	}
	verts := append([]Vertex(nil), vertices...)
	return &Polygon{
		vertices: verts,
		plane:    *plane,
		convex:   verticesAreConvex(verts, plane.Normal),
		material: material,
	}
}

// newPolygonUnchecked wraps a vertex ring whose invariants have already
// been established by the caller, typically on the split and join paths
// where plane and convexity are known.
func newPolygonUnchecked(vertices []Vertex, plane Plane, convex bool, material Material, id int) *Polygon {
	assert.True(!verticesAreDegenerate(vertices), "degenerate vertex ring")
	for _, v := range vertices {
		assert.True(plane.comparePoint(v.Position) == planeCoplanar,
			"vertex %v off the polygon plane", v.Position)
	}
	return &Polygon{
		vertices: vertices,
		plane:    plane,
		convex:   convex,
		material: material,
		id:       id,
	}
}

// Vertices returns the polygon's vertex ring. The returned slice must not
// be modified.
func (p *Polygon) Vertices() []Vertex {
	return p.vertices
}

// Plane returns the plane all the polygon's vertices lie on.
func (p *Polygon) Plane() Plane {
	return p.plane
}

// IsConvex reports whether the polygon is convex.
func (p *Polygon) IsConvex() bool {
	return p.convex
}

// Material returns the polygon's material.
func (p *Polygon) Material() Material {
	return p.material
}

// WithMaterial returns a copy of the polygon tagged with the given
// material. The original is unchanged.
func (p *Polygon) WithMaterial(material Material) *Polygon {
	q := *p
	q.material = material
	return &q
}

// withID returns a copy of the polygon carrying the given split tag.
func (p *Polygon) withID(id int) *Polygon {
	q := *p
	q.id = id
	return &q
}

// Compare positions the whole polygon relative to a plane by folding the
// comparisons of its vertices. It short-circuits as soon as vertices are
// found on both sides.
func (p *Polygon) Compare(plane Plane) planeComparison {
	c := planeCoplanar
	for _, v := range p.vertices {
		c = c.union(plane.comparePoint(v.Position))
		if c == planeSpanning {
			break
		}
	}
	return c
}

// Inverted returns the polygon with its winding, vertex normals and plane
// reversed, so that it faces the opposite direction.
func (p *Polygon) Inverted() *Polygon {
	n := len(p.vertices)
	verts := make([]Vertex, n)
	for i, v := range p.vertices {
		verts[n-1-i] = v.Inverted()
	}
	return &Polygon{
		vertices: verts,
		plane:    p.plane.Inverted(),
		convex:   p.convex,
		material: p.material,
		id:       p.id,
	}
}

// split cuts the polygon along plane, appending the pieces to the
// caller-provided lists. A polygon entirely on one side is appended whole
// to that side's list. A spanning polygon is cut edge by edge; both halves
// inherit the polygon's plane and material and a common non-zero id drawn
// from the id counter, so Merge can re-join them later.
func (p *Polygon) split(plane Plane, coplanar, front, back *[]*Polygon, id *int) {
	switch p.Compare(plane) {
	case planeCoplanar:
		*coplanar = append(*coplanar, p)
		return
	case planeFront:
		*front = append(*front, p)
		return
	case planeBack:
		*back = append(*back, p)
		return
	}

	polygon := p
	if polygon.id == 0 {
		*id++
		polygon = polygon.withID(*id)
	}
	if !polygon.convex {
		for _, piece := range polygon.Tessellate() {
			piece.split(plane, coplanar, front, back, id)
		}
		return
	}

	var f, b []Vertex
	n := len(polygon.vertices)
	for i := 0; i < n; i++ {
		vi := polygon.vertices[i]
		vj := polygon.vertices[(i+1)%n]
		ti := plane.comparePoint(vi.Position)
		tj := plane.comparePoint(vj.Position)
		if ti != planeBack {
			f = append(f, vi)
		}
		if ti != planeFront {
			b = append(b, vi)
		}
		if ti.union(tj) == planeSpanning {
			t := (plane.W - plane.Normal.Dot(vi.Position)) /
				plane.Normal.Dot(vj.Position.Sub(vi.Position))
			v := vi.Lerp(vj, t)
			f = append(f, v)
			b = append(b, v)
		}
	}
	if !verticesAreDegenerate(f) {
		*front = append(*front, newPolygonUnchecked(f, polygon.plane, true, polygon.material, polygon.id))
	}
	if !verticesAreDegenerate(b) {
		*back = append(*back, newPolygonUnchecked(b, polygon.plane, true, polygon.material, polygon.id))
	}
}

// ContainsPoint reports whether point lies on the polygon, boundary
// included. Points off the polygon's plane are never contained. Convex
// polygons are tested against their edge planes; concave ones are
// flattened onto the closest axis-aligned plane and tested with a 2D
// crossing count.
func (p *Polygon) ContainsPoint(point Vector) bool {
	if p.plane.comparePoint(point) != planeCoplanar {
		return false
	}
	if p.convex {
		for _, edge := range p.edgePlanes() {
			if edge.comparePoint(point) == planeFront {
				return false
			}
		}
		return true
	}

	axis := dominantAxis(p.plane.Normal)
	px, py := flattened(point, axis)
	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := flattened(p.vertices[i].Position, axis)
		xj, yj := flattened(p.vertices[j].Position, axis)
		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// edgePlanes returns, for every directed edge of the polygon, the plane
// containing that edge and perpendicular to the polygon, facing away from
// the polygon's interior. A point lies within a convex polygon exactly
// when it is behind every edge plane.
func (p *Polygon) edgePlanes() []Plane {
	n := len(p.vertices)
	planes := make([]Plane, 0, n)
	for i := 0; i < n; i++ {
		a := p.vertices[i].Position
		b := p.vertices[(i+1)%n].Position
		normal := b.Sub(a).Cross(p.plane.Normal).Normalized()
		planes = append(planes, Plane{Normal: normal, W: normal.Dot(a)})
	}
	return planes
}

// clip cuts polygon by the edge planes of p, which must be convex.
// Fragments within p's edge planes accumulate into inside, the rest into
// outside. Non-convex input is tessellated first.
func (p *Polygon) clip(polygon *Polygon, inside, outside *[]*Polygon, id *int) {
	assert.True(p.convex, "clipping polygon must be convex")
	working := []*Polygon{polygon}
	if !polygon.convex {
		working = polygon.Tessellate()
	}
	for _, edge := range p.edgePlanes() {
		var front, back []*Polygon
		for _, poly := range working {
			poly.split(edge, &back, &front, &back, id)
		}
		*outside = append(*outside, front...)
		working = back
		if len(working) == 0 {
			return
		}
	}
	*inside = append(*inside, working...)
}

// Clip cuts the polygon by a sequence of clipping polygons, which must
// all be convex. It returns the fragments of p that fall within at least
// one clipper, and the fragments left outside all of them.
func (p *Polygon) Clip(clippers []*Polygon) (inside, outside []*Polygon) {
	var id int
	working := []*Polygon{p}
	for _, clipper := range clippers {
		var out []*Polygon
		for _, poly := range working {
			clipper.clip(poly, &inside, &out, &id)
		}
		working = out
		if len(working) == 0 {
			break
		}
	}
	outside = working
	return inside, outside
}

// Merge joins p and q into a single polygon if they are allowed to merge:
// either both are untouched by splits (id 0) with the same material and
// the same plane, or both are sibling fragments of the same split (equal
// non-zero id). It returns nil when merging does not apply or the shared
// edge structure is wrong.
func (p *Polygon) Merge(q *Polygon) *Polygon {
	if p.id != q.id {
		return nil
	}
	if p.id == 0 && (p.material != q.material || !p.plane.IsEqual(q.plane)) {
		return nil
	}
	return p.join(q, false)
}

// join concatenates the vertex rings of p and q across their shared edge.
// The polygons must share exactly two vertices (position, normal and
// texture coordinate all within epsilon), adjacent in both rings and
// traversed in opposite directions. Join vertices whose surrounding edges
// become colinear are dropped. Returns nil if the shared edge structure
// is wrong, the result is degenerate, or ensureConvex is set and the
// result is not convex.
func (p *Polygon) join(q *Polygon, ensureConvex bool) *Polygon {
	type match struct{ pi, qi int }
	var shared []match
	for i, v := range p.vertices {
		for j, w := range q.vertices {
			if v.isEqual(w) {
				shared = append(shared, match{i, j})
				break
			}
		}
		if len(shared) > 2 {
			return nil
		}
	}
	if len(shared) != 2 {
		return nil
	}

	n, m := len(p.vertices), len(q.vertices)
	a, b := shared[0], shared[1]
	// a→b must be an edge of p...
	if (a.pi+1)%n != b.pi {
		if (b.pi+1)%n != a.pi {
			return nil
		}
		a, b = b, a
	}
	// ...traversed b→a in q.
	if (b.qi+1)%m != a.qi {
		return nil
	}

	// Walk all of p starting at b, then q's run strictly between the
	// shared pair. The join vertices end up at ring[0] and ring[n-1].
	ring := make([]Vertex, 0, n+m-2)
	for i := 0; i < n; i++ {
		ring = append(ring, p.vertices[(b.pi+i)%n])
	}
	for j := (a.qi + 1) % m; j != b.qi; j = (j + 1) % m {
		ring = append(ring, q.vertices[j])
	}

	ring = removeIfColinear(ring, n-1)
	ring = removeIfColinear(ring, 0)
	if verticesAreDegenerate(ring) {
		return nil
	}
	convex := verticesAreConvex(ring, p.plane.Normal)
	if ensureConvex && !convex {
		return nil
	}
	return &Polygon{
		vertices: ring,
		plane:    p.plane,
		convex:   convex,
		material: p.material,
		id:       p.id,
	}
}

// removeIfColinear drops ring[k] if the two edges around it point in the
// same direction within epsilon.
func removeIfColinear(ring []Vertex, k int) []Vertex {
	l := len(ring)
	prev := ring[(k+l-1)%l].Position
	cur := ring[k].Position
	next := ring[(k+1)%l].Position
	d1 := cur.Sub(prev).Normalized()
	d2 := next.Sub(cur).Normalized()
	if d1.Dot(d2) >= 1-epsilon {
		ring = append(ring[:k], ring[k+1:]...)
	}
	return ring
}

// Translated returns the polygon moved by offset.
func (p *Polygon) Translated(offset Vector) *Polygon {
	verts := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		v.Position = v.Position.Add(offset)
		verts[i] = v
	}
	plane := Plane{Normal: p.plane.Normal, W: p.plane.W + p.plane.Normal.Dot(offset)}
	return newPolygonUnchecked(verts, plane, p.convex, p.material, p.id)
}

// Rotated returns the polygon rotated by r around the origin.
func (p *Polygon) Rotated(r Rotation) *Polygon {
	verts := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		v.Position = r.Apply(v.Position)
		v.Normal = r.Apply(v.Normal)
		verts[i] = v
	}
	plane := Plane{Normal: r.Apply(p.plane.Normal), W: p.plane.W}
	return newPolygonUnchecked(verts, plane, p.convex, p.material, p.id)
}

// Scaled returns the polygon scaled uniformly by f relative to the
// origin. A negative factor mirrors the polygon through the origin and
// reverses its orientation accordingly.
func (p *Polygon) Scaled(f float64) *Polygon {
	n := len(p.vertices)
	flip := f < 0
	verts := make([]Vertex, n)
	for i, v := range p.vertices {
		v.Position = v.Position.Scaled(f)
		if flip {
			v.Normal = v.Normal.Negated()
		}
		at := i
		if flip {
			at = n - 1 - i
		}
		verts[at] = v
	}
	plane := Plane{Normal: p.plane.Normal, W: p.plane.W * f}
	if flip {
		plane = plane.Inverted()
	}
	return newPolygonUnchecked(verts, plane, p.convex, p.material, p.id)
}

// verticesAreDegenerate reports whether a vertex ring cannot form a valid
// polygon: fewer than 3 vertices, coincident neighbours, or no enclosed
// area.
func verticesAreDegenerate(vertices []Vertex) bool {
	n := len(vertices)
	if n < 3 {
		return true
	}
	for i := 0; i < n; i++ {
		edge := vertices[(i+1)%n].Position.Sub(vertices[i].Position)
		if edge.Length() <= epsilon {
			return true
		}
	}
	// Newell's method: the length of the summed edge cross products is
	// twice the enclosed area.
	var normal Vector
	for i := 0; i < n; i++ {
		a := vertices[i].Position
		b := vertices[(i+1)%n].Position
		normal = normal.Add(a.Cross(b))
	}
	return normal.Length() <= epsilon
}

// verticesAreConvex reports whether every corner of the ring turns the
// same way as the winding implied by normal.
func verticesAreConvex(vertices []Vertex, normal Vector) bool {
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i].Position
		b := vertices[(i+1)%n].Position
		c := vertices[(i+2)%n].Position
		if b.Sub(a).Cross(c.Sub(b)).Dot(normal) < -epsilon {
			return false
		}
	}
	return true
}
