package csg

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vectorsApproxEqual(a, b Vector, tol float64) bool {
	return approxEqual(a.X, b.X, tol) &&
		approxEqual(a.Y, b.Y, tol) &&
		approxEqual(a.Z, b.Z, tol)
}

func TestVectorCross(t *testing.T) {
	vecTests := []struct {
		v1, v2 Vector
		want   Vector
	}{
		{
			Vector{3, -3, 1},
			Vector{4, 9, 2},
			Vector{-15, -2, 39},
		},
		{
			Vector{3, -3, 1},
			Vector{3, -3, 1},
			Vector{0, 0, 0},
		},
		{
			Vector{1, 0, 0},
			Vector{0, 1, 0},
			Vector{0, 0, 1},
		},
	}

	for _, tt := range vecTests {
		got := tt.v1.Cross(tt.v2)
		if !vectorsApproxEqual(tt.want, got, 1e-12) {
			t.Errorf("%v x %v, want %v, got %v", tt.v1, tt.v2, tt.want, got)
		}
	}
}

func TestVectorDot(t *testing.T) {
	vecTests := []struct {
		v1, v2 Vector
		want   float64
	}{
		{
			Vector{1, 0, 0},
			Vector{1, 0, 0},
			1,
		},
		{
			Vector{1, 2, 3},
			Vector{0, 0, 0},
			0,
		},
		{
			Vector{1, 2, 3},
			Vector{4, 5, 6},
			32,
		},
	}

	for _, tt := range vecTests {
		got := tt.v1.Dot(tt.v2)
		if !approxEqual(tt.want, got, 1e-12) {
			t.Errorf("%v . %v, want %f, got %f", tt.v1, tt.v2, tt.want, got)
		}
	}
}

func TestVectorNormalized(t *testing.T) {
	vecTests := []struct {
		v    Vector
		want Vector
	}{
		{Vector{10, 0, 0}, Vector{1, 0, 0}},
		{Vector{0, -2, 0}, Vector{0, -1, 0}},
		{Vector{1, 1, 1}, Vector{1, 1, 1}.Scaled(1 / math.Sqrt(3))},
		{Vector{}, Vector{}},
	}

	for _, tt := range vecTests {
		got := tt.v.Normalized()
		if !vectorsApproxEqual(tt.want, got, 1e-12) {
			t.Errorf("normalized %v, want %v, got %v", tt.v, tt.want, got)
		}
	}
}

func TestVectorLerp(t *testing.T) {
	a := Vector{0, 0, 0}
	b := Vector{2, 4, -6}

	lerpTests := []struct {
		t    float64
		want Vector
	}{
		{0, a},
		{1, b},
		{0.5, Vector{1, 2, -3}},
	}

	for _, tt := range lerpTests {
		got := a.Lerp(b, tt.t)
		if !vectorsApproxEqual(tt.want, got, 1e-12) {
			t.Errorf("lerp(%v, %v, %f), want %v, got %v", a, b, tt.t, tt.want, got)
		}
	}
}

func TestVectorLength(t *testing.T) {
	if got := (Vector{3, 4, 0}).Length(); !approxEqual(got, 5, 1e-12) {
		t.Errorf("length of (3,4,0), want 5, got %f", got)
	}
	if got := (Vector{3, 4, 0}).LengthSquared(); !approxEqual(got, 25, 1e-12) {
		t.Errorf("squared length of (3,4,0), want 25, got %f", got)
	}
}
