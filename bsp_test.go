package csg

import "testing"

// bigSquareAt returns a 4x4 square at height z, wound anticlockwise
// seen from +z, large enough to stick out of the test cube on every
// side.
func bigSquareAt(z float64) *Polygon {
	verts := []Vertex{
		{Position: Vector{-2, -2, z}, Normal: Vector{0, 0, 1}},
		{Position: Vector{2, -2, z}, Normal: Vector{0, 0, 1}},
		{Position: Vector{2, 2, z}, Normal: Vector{0, 0, 1}},
		{Position: Vector{-2, 2, z}, Normal: Vector{0, 0, 1}},
	}
	return NewPolygon(verts, nil)
}

func TestBSPClipCrossing(t *testing.T) {
	cube := NewCube(Vector{}, 2, nil)

	// a plane through the middle of the cube: 4 of the 16 units of area
	// are inside
	clipTests := []struct {
		keeping clipRule
		want    float64
	}{
		{greaterThan, 12},
		{greaterThanEqual, 12},
		{lessThan, 4},
		{lessThanEqual, 4},
	}

	for _, tt := range clipTests {
		var id int
		bsp := newBSP(cube.Polygons(), &id)
		got := bsp.clip([]*Polygon{bigSquareAt(0)}, tt.keeping, &id)
		if a := polygonsArea(got); !approxEqual(a, tt.want, 1e-9) {
			t.Errorf("keeping %d: area, want %f, got %f", tt.keeping, tt.want, a)
		}
	}
}

func TestBSPClipCoplanar(t *testing.T) {
	cube := NewCube(Vector{}, 2, nil)

	// a square on the cube's top face plane: the footprint is boundary
	// surface, kept only by the non-strict rules
	clipTests := []struct {
		keeping clipRule
		want    float64
	}{
		{greaterThan, 12},
		{greaterThanEqual, 16},
		{lessThan, 0},
		{lessThanEqual, 4},
	}

	for _, tt := range clipTests {
		var id int
		bsp := newBSP(cube.Polygons(), &id)
		got := bsp.clip([]*Polygon{bigSquareAt(1)}, tt.keeping, &id)
		if a := polygonsArea(got); !approxEqual(a, tt.want, 1e-9) {
			t.Errorf("keeping %d: area, want %f, got %f", tt.keeping, tt.want, a)
		}
	}
}

func TestBSPEmpty(t *testing.T) {
	var id int
	bsp := newBSP(nil, &id)
	if bsp != nil {
		t.Fatal("want nil tree from no polygons")
	}

	square := bigSquareAt(0)
	if got := bsp.clip([]*Polygon{square}, greaterThan, &id); len(got) != 1 || got[0] != square {
		t.Error("an empty tree should keep everything outside")
	}
	if got := bsp.clip([]*Polygon{square}, lessThan, &id); len(got) != 0 {
		t.Error("an empty tree should keep nothing inside")
	}
}
