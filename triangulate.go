package csg

// Triangulate splits the polygon into triangles. Convex polygons are
// fanned from their first vertex; concave ones go through ear clipping.
//
// Ear clipping is best-effort: on pathological inputs (self-intersecting
// or numerically degenerate rings) it stops after two full revolutions
// without progress and returns the triangles collected so far.
func (p *Polygon) Triangulate() []*Polygon {
	if len(p.vertices) == 3 {
		return []*Polygon{p}
	}
	if p.convex {
		triangles := make([]*Polygon, 0, len(p.vertices)-2)
		for i := 1; i+1 < len(p.vertices); i++ {
			verts := []Vertex{p.vertices[0], p.vertices[i], p.vertices[i+1]}
			if !verticesAreDegenerate(verts) {
				triangles = append(triangles, newPolygonUnchecked(verts, p.plane, true, p.material, p.id))
			}
		}
		return triangles
	}
	return p.earClip()
}

func (p *Polygon) earClip() []*Polygon {
	vertices := append([]Vertex(nil), p.vertices...)
	var triangles []*Polygon
	emit := func(a, b, c Vertex) {
		verts := []Vertex{a, b, c}
		if !verticesAreDegenerate(verts) {
			triangles = append(triangles, newPolygonUnchecked(verts, p.plane, true, p.material, p.id))
		}
	}

	i := 0
	rejected := 0 // candidates rejected since the last removal
	for len(vertices) > 3 {
		n := len(vertices)
		if rejected > 2*n {
			// Two full revolutions without clipping an ear: the ring is
			// beyond repair, keep what we have.
			return triangles
		}
		i %= n
		p0 := vertices[i]
		p1 := vertices[(i+1)%n]
		p2 := vertices[(i+2)%n]
		e1 := p1.Position.Sub(p0.Position)
		e2 := p2.Position.Sub(p1.Position)
		cross := e1.Cross(e2)

		if cross.Length() <= epsilon {
			if e1.Dot(e2) > 0 {
				// p1 sits on the segment p0-p2: redundant, drop it.
				vertices = removeVertex(vertices, (i+1)%n)
				rejected = 0
			} else {
				i++
				rejected++
			}
			continue
		}
		if cross.Dot(p.plane.Normal) <= 0 {
			// reflex corner
			i++
			rejected++
			continue
		}
		if anyVertexInTriangle(vertices, i, (i+1)%n, (i+2)%n, p.plane.Normal) {
			i++
			rejected++
			continue
		}

		emit(p0, p1, p2)
		vertices = removeVertex(vertices, (i+1)%n)
		rejected = 0
	}
	emit(vertices[0], vertices[1], vertices[2])
	return triangles
}

func removeVertex(vertices []Vertex, k int) []Vertex {
	return append(vertices[:k], vertices[k+1:]...)
}

// anyVertexInTriangle reports whether any ring vertex other than the
// triangle's own corners lies strictly inside the triangle
// (i0, i1, i2).
func anyVertexInTriangle(vertices []Vertex, i0, i1, i2 int, normal Vector) bool {
	a := vertices[i0].Position
	b := vertices[i1].Position
	c := vertices[i2].Position
	for j := range vertices {
		if j == i0 || j == i1 || j == i2 {
			continue
		}
		if pointStrictlyInTriangle(vertices[j].Position, a, b, c, normal) {
			return true
		}
	}
	return false
}

func pointStrictlyInTriangle(q, a, b, c, normal Vector) bool {
	return b.Sub(a).Cross(q.Sub(a)).Dot(normal) > epsilon &&
		c.Sub(b).Cross(q.Sub(b)).Dot(normal) > epsilon &&
		a.Sub(c).Cross(q.Sub(c)).Dot(normal) > epsilon
}

// Tessellate splits the polygon into convex polygons: the triangulation,
// with adjacent triangles greedily re-joined wherever their union stays
// convex. A convex polygon tessellates to itself.
func (p *Polygon) Tessellate() []*Polygon {
	if p.convex {
		return []*Polygon{p}
	}
	polygons := p.Triangulate()
	for i := 0; i < len(polygons); {
		merged := false
		for j := i + 1; j < len(polygons); j++ {
			if m := polygons[i].join(polygons[j], true); m != nil {
				polygons[i] = m
				polygons = append(polygons[:j], polygons[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			i++
		}
	}
	return polygons
}
