package csg

import "testing"

// triangleWindsUp reports whether a triangle's winding agrees with the
// +z normal.
func triangleWindsUp(p *Polygon) bool {
	v := p.Vertices()
	n := v[1].Position.Sub(v[0].Position).Cross(v[2].Position.Sub(v[0].Position))
	return n.Dot(Vector{0, 0, 1}) > 0
}

func TestTriangulateConvex(t *testing.T) {
	square := polyFromXY(unitSquare, nil)
	tris := square.Triangulate()
	if len(tris) != 2 {
		t.Fatalf("want 2 triangles from a quad, got %d", len(tris))
	}
	if a := polygonsArea(tris); !approxEqual(a, 1, 1e-9) {
		t.Errorf("triangle area, want 1, got %f", a)
	}
	for _, tri := range tris {
		if !triangleWindsUp(tri) {
			t.Errorf("triangle winding disagrees with the polygon normal: %v", tri.Vertices())
		}
	}
}

func TestTriangulateConcave(t *testing.T) {
	// 7-vertex L shape with a chamfered outer corner, concave at (1,1)
	chamferedL := [][2]float64{
		{0, 0}, {2.5, 0}, {3, 0.5}, {3, 1}, {1, 1}, {1, 2}, {0, 2},
	}
	p := polyFromXY(chamferedL, nil)
	if p == nil {
		t.Fatal("want polygon from chamfered L, got nil")
	}
	if p.IsConvex() {
		t.Fatal("chamfered L should not be convex")
	}

	tris := p.Triangulate()
	if len(tris) != 5 {
		t.Fatalf("want 5 triangles from a 7-vertex ring, got %d", len(tris))
	}
	for _, tri := range tris {
		if len(tri.Vertices()) != 3 {
			t.Fatalf("want triangles, got %d vertices", len(tri.Vertices()))
		}
		if !triangleWindsUp(tri) {
			t.Errorf("triangle winding disagrees with the polygon normal: %v", tri.Vertices())
		}
	}
	// the bottom rectangle is 3x1 minus the 0.125 chamfer corner, plus
	// the 1x1 upper leg
	if a := polygonsArea(tris); !approxEqual(a, 3.875, 1e-9) {
		t.Errorf("triangle area, want 3.875, got %f", a)
	}
}

func TestTriangulateRedundantVertex(t *testing.T) {
	// concave ring with a redundant colinear vertex at (1,0)
	withColinear := [][2]float64{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
	}
	p := polyFromXY(withColinear, nil)
	if p == nil {
		t.Fatal("want polygon, got nil")
	}

	tris := p.Triangulate()
	if len(tris) != 4 {
		t.Fatalf("want 4 triangles once the colinear vertex is dropped, got %d", len(tris))
	}
	if a := polygonsArea(tris); !approxEqual(a, 3, 1e-9) {
		t.Errorf("triangle area, want 3, got %f", a)
	}
}

func TestTessellate(t *testing.T) {
	square := polyFromXY(unitSquare, nil)
	if parts := square.Tessellate(); len(parts) != 1 || parts[0] != square {
		t.Error("a convex polygon should tessellate to itself")
	}

	l := polyFromXY(lShape, nil)
	parts := l.Tessellate()
	if len(parts) < 2 || len(parts) > 4 {
		t.Fatalf("want between 2 and 4 convex parts from the L, got %d", len(parts))
	}
	for _, part := range parts {
		if !part.IsConvex() {
			t.Errorf("tessellation produced a non-convex part: %v", part.Vertices())
		}
	}
	if a := polygonsArea(parts); !approxEqual(a, 3, 1e-9) {
		t.Errorf("tessellated area, want 3, got %f", a)
	}
}
