package csg

import "math"

// Rotation is a unit quaternion representing a rotation in 3D space.
// The zero value is not a valid rotation; use Identity or one of the
// constructors.
type Rotation struct {
	X, Y, Z, W float64
}

// Identity returns the rotation that leaves vectors unchanged.
func Identity() Rotation {
	return Rotation{W: 1}
}

// NewRotation returns the rotation of the given angle in radians around
// axis. The axis is normalized.
func NewRotation(axis Vector, radians float64) Rotation {
	axis = axis.Normalized()
	s, c := math.Sincos(radians / 2)
	return Rotation{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// Pitch returns a rotation around the x axis.
func Pitch(radians float64) Rotation {
	return NewRotation(Vector{X: 1}, radians)
}

// Yaw returns a rotation around the y axis.
func Yaw(radians float64) Rotation {
	return NewRotation(Vector{Y: 1}, radians)
}

// Roll returns a rotation around the z axis.
func Roll(radians float64) Rotation {
	return NewRotation(Vector{Z: 1}, radians)
}

// Mul composes r and o into the rotation equivalent to applying o first,
// then r.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{
		X: r.W*o.X + r.X*o.W + r.Y*o.Z - r.Z*o.Y,
		Y: r.W*o.Y - r.X*o.Z + r.Y*o.W + r.Z*o.X,
		Z: r.W*o.Z + r.X*o.Y - r.Y*o.X + r.Z*o.W,
		W: r.W*o.W - r.X*o.X - r.Y*o.Y - r.Z*o.Z,
	}
}

// Apply rotates v by r.
func (r Rotation) Apply(v Vector) Vector {
	// q v q* expanded to two cross products.
	q := Vector{r.X, r.Y, r.Z}
	t := q.Cross(v).Scaled(2)
	return v.Add(t.Scaled(r.W)).Add(q.Cross(t))
}
