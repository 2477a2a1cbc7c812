package csg

// Vertex is a polygon corner. Position is a point on the polygon's plane,
// Normal the surface direction used for shading, and TexCoord a texture
// coordinate in [0,1]².
type Vertex struct {
	Position Vector
	Normal   Vector
	TexCoord Vector
}

// NewVertex returns a vertex with the given position, normal and texture
// coordinate. The normal is normalized.
func NewVertex(position, normal, texcoord Vector) Vertex {
	return Vertex{
		Position: position,
		Normal:   normal.Normalized(),
		TexCoord: texcoord,
	}
}

// Lerp performs a linear interpolation from v toward w of all vertex
// attributes. t is the interpolation factor, from 0 (v) to 1 (w).
func (v Vertex) Lerp(w Vertex, t float64) Vertex {
	return Vertex{
		Position: v.Position.Lerp(w.Position, t),
		Normal:   v.Normal.Lerp(w.Normal, t),
		TexCoord: v.TexCoord.Lerp(w.TexCoord, t),
	}
}

// Inverted returns v with its normal flipped, for use in an inverted
// polygon.
func (v Vertex) Inverted() Vertex {
	return Vertex{
		Position: v.Position,
		Normal:   v.Normal.Negated(),
		TexCoord: v.TexCoord,
	}
}

// isEqual reports whether every attribute of v and w is equal within
// epsilon.
func (v Vertex) isEqual(w Vertex) bool {
	return v.Position.isEqual(w.Position) &&
		v.Normal.isEqual(w.Normal) &&
		v.TexCoord.isEqual(w.TexCoord)
}
