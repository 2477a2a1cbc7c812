package csg

import "math"

// Mesh builders for the solids the boolean operations are usually fed
// with. Both produce closed surfaces wound anticlockwise as seen from
// outside, with smooth normals on the sphere and per-face normals on the
// cube.

// cubeFaces indexes the corners of a unit cube, corner i sitting at
// (±1, ±1, ±1) with the sign of each axis taken from bits 0, 1 and 2
// of i. Each face lists its corners anticlockwise as seen from outside.
var cubeFaces = [6]struct {
	corners [4]int
	normal  Vector
}{
	{[4]int{0, 4, 6, 2}, Vector{X: -1}},
	{[4]int{1, 3, 7, 5}, Vector{X: 1}},
	{[4]int{0, 1, 5, 4}, Vector{Y: -1}},
	{[4]int{2, 6, 7, 3}, Vector{Y: 1}},
	{[4]int{0, 2, 3, 1}, Vector{Z: -1}},
	{[4]int{4, 5, 7, 6}, Vector{Z: 1}},
}

var quadTexCoords = [4]Vector{
	{},
	{X: 1},
	{X: 1, Y: 1},
	{Y: 1},
}

// NewCube returns an axis-aligned cube of the given edge length around
// center, one quad per face.
func NewCube(center Vector, size float64, material Material) *Mesh {
	h := size / 2
	polygons := make([]*Polygon, 0, 6)
	for _, face := range cubeFaces {
		verts := make([]Vertex, 0, 4)
		for i, c := range face.corners {
			pos := Vector{
				X: center.X + h*float64((c&1)*2-1),
				Y: center.Y + h*float64((c>>1&1)*2-1),
				Z: center.Z + h*float64((c>>2&1)*2-1),
			}
			verts = append(verts, Vertex{
				Position: pos,
				Normal:   face.normal,
				TexCoord: quadTexCoords[i],
			})
		}
		plane := Plane{Normal: face.normal, W: face.normal.Dot(verts[0].Position)}
		polygons = append(polygons, newPolygonUnchecked(verts, plane, true, material, 0))
	}
	return NewMesh(polygons)
}

// NewSphere returns a latitude/longitude sphere around center. slices is
// the number of segments around the polar axis (minimum 3), stacks the
// number of bands from pole to pole (minimum 2). Bands are quads,
// pole caps are triangles; vertex normals point radially for smooth
// shading.
func NewSphere(center Vector, radius float64, slices, stacks int, material Material) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	at := func(i, j int) Vertex {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		sp, cp := math.Sincos(phi)
		st, ct := math.Sincos(theta)
		dir := Vector{X: sp * ct, Y: cp, Z: sp * st}
		return Vertex{
			Position: center.Add(dir.Scaled(radius)),
			Normal:   dir,
			TexCoord: Vector{
				X: float64(j) / float64(slices),
				Y: 1 - float64(i)/float64(stacks),
			},
		}
	}

	var polygons []*Polygon
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			ring := []Vertex{at(i, j), at(i, j+1), at(i+1, j+1), at(i+1, j)}
			switch i {
			case 0:
				ring = ring[1:] // top corners coincide at the pole
			case stacks - 1:
				ring = ring[:3] // bottom corners coincide
			}
			if p := NewPolygon(ring, material); p != nil {
				polygons = append(polygons, p)
			}
		}
	}
	return NewMesh(polygons)
}
