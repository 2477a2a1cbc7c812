package csg

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vector
}

// emptyBounds is the identity element for Union: it intersects nothing and
// extends to nothing.
func emptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: Vector{inf, inf, inf},
		Max: Vector{-inf, -inf, -inf},
	}
}

// boundsFromPoints derives the smallest bounds enclosing all points.
func boundsFromPoints(points []Vector) Bounds {
	b := emptyBounds()
	for _, p := range points {
		b = b.extended(p)
	}
	return b
}

// extended grows b just enough to enclose point.
func (b Bounds) extended(point Vector) Bounds {
	return Bounds{
		Min: Vector{
			math.Min(b.Min.X, point.X),
			math.Min(b.Min.Y, point.Y),
			math.Min(b.Min.Z, point.Z),
		},
		Max: Vector{
			math.Max(b.Max.X, point.X),
			math.Max(b.Max.Y, point.Y),
			math.Max(b.Max.Z, point.Z),
		},
	}
}

// IsEmpty reports whether the bounds enclose no point at all, as for a
// mesh without polygons. Flat bounds of zero volume are not empty.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Intersects reports whether b and o overlap or touch.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Union returns the smallest bounds enclosing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return b.extended(o.Min).extended(o.Max)
}

// Center returns the point equidistant from all faces of the bounds.
func (b Bounds) Center() Vector {
	return b.Min.Lerp(b.Max, 0.5)
}

// Size returns the extent of the bounds along each axis.
func (b Bounds) Size() Vector {
	if b.IsEmpty() {
		return Vector{}
	}
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corner points of the bounds.
func (b Bounds) Corners() []Vector {
	return []Vector{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
	}
}
