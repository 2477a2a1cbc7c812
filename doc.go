// Package csg implements constructive solid geometry on polygon meshes:
// boolean volume operations computed by classifying and re-splitting the
// polygons of each operand against the volume of the other.
//
// A boolean operation on two meshes goes through the following steps:
//
//  - Build a binary space partition tree over each operand's polygons.
//  - Clip each operand's polygons against the other's tree, keeping the
//    inside or outside fragments the operation calls for.
//  - Assemble the result mesh from the kept fragments, inverting the
//    ones whose facing must flip (e.g. the carved surface of a
//    subtraction).
//
// Inputs are expected to be closed, orientable surfaces with polygons
// wound anticlockwise as seen from outside; the engine does not repair
// open or self-intersecting meshes. All geometric comparisons share a
// single module-wide tolerance, calibrated for unit-scale geometry.
package csg
