package csg

import (
	"math"
	"testing"
)

func TestRotationApply(t *testing.T) {
	rotTests := []struct {
		name string
		r    Rotation
		v    Vector
		want Vector
	}{
		{"identity", Identity(), Vector{1, 2, 3}, Vector{1, 2, 3}},
		{"yaw 90", Yaw(math.Pi / 2), Vector{1, 0, 0}, Vector{0, 0, -1}},
		{"pitch 90", Pitch(math.Pi / 2), Vector{0, 1, 0}, Vector{0, 0, 1}},
		{"roll 90", Roll(math.Pi / 2), Vector{1, 0, 0}, Vector{0, 1, 0}},
		{"yaw 180", Yaw(math.Pi), Vector{1, 0, 0}, Vector{-1, 0, 0}},
	}

	for _, tt := range rotTests {
		got := tt.r.Apply(tt.v)
		if !vectorsApproxEqual(tt.want, got, 1e-12) {
			t.Errorf("%s: apply to %v, want %v, got %v", tt.name, tt.v, tt.want, got)
		}
	}
}

func TestRotationMul(t *testing.T) {
	// two quarter yaws compose into a half yaw
	got := Yaw(math.Pi / 2).Mul(Yaw(math.Pi / 2)).Apply(Vector{1, 0, 0})
	if !vectorsApproxEqual(got, Vector{-1, 0, 0}, 1e-12) {
		t.Errorf("two quarter yaws on (1,0,0), want (-1,0,0), got %v", got)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	r := NewRotation(Vector{1, 2, 3}, 1.234)
	v := Vector{-4, 5, 0.5}
	if got := r.Apply(v).Length(); !approxEqual(got, v.Length(), 1e-12) {
		t.Errorf("rotation changed length: want %f, got %f", v.Length(), got)
	}
}
