package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	csg "github.com/arl/go-csg"
	"github.com/arl/gobj"
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
	"github.com/krasin/stl"
)

// loadMesh reads the geometry at path into a mesh, scaled by the given
// factor. The format is chosen by extension: .stl (binary or ASCII) or
// .obj. Every polygon is tagged with the file's base name as material, so
// stencil operations can tell operands apart.
func loadMesh(path string, scale float64) (*csg.Mesh, error) {
	var mesh *csg.Mesh
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		tris, err := stl.Read(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read STL file %q: %v", path, err)
		}
		mesh = meshFromSTL(tris, filepath.Base(path))
	case ".obj":
		of, err := gobj.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read OBJ file %q: %v", path, err)
		}
		mesh = meshFromOBJ(of, filepath.Base(path))
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
	}
	if scale != 1 {
		mesh = mesh.Scaled(scale)
	}
	return mesh, nil
}

// meshFromSTL converts an STL triangle soup. Facet normals found in STL
// files are often zeroed or stale, so they are recomputed from the
// vertices; degenerate triangles are dropped.
func meshFromSTL(tris []stl.Triangle, material csg.Material) *csg.Mesh {
	polygons := make([]*csg.Polygon, 0, len(tris))
	for _, t := range tris {
		n, ok := facetNormal(t)
		if !ok {
			continue
		}
		normal := csg.NewVector(float64(n[0]), float64(n[1]), float64(n[2]))
		verts := make([]csg.Vertex, 3)
		for i, p := range t.V {
			verts[i] = csg.Vertex{
				Position: csg.NewVector(float64(p[0]), float64(p[1]), float64(p[2])),
				Normal:   normal,
			}
		}
		if poly := csg.NewPolygon(verts, material); poly != nil {
			polygons = append(polygons, poly)
		}
	}
	return csg.NewMesh(polygons)
}

// facetNormal derives the normal of an STL facet from its vertices.
// ok is false for triangles with no area.
func facetNormal(t stl.Triangle) (n d3.Vec3, ok bool) {
	v0 := d3.NewVec3XYZ(float32(t.V[0][0]), float32(t.V[0][1]), float32(t.V[0][2]))
	v1 := d3.NewVec3XYZ(float32(t.V[1][0]), float32(t.V[1][1]), float32(t.V[1][2]))
	v2 := d3.NewVec3XYZ(float32(t.V[2][0]), float32(t.V[2][1]), float32(t.V[2][2]))
	n = v1.Sub(v0).Cross(v2.Sub(v0))
	if math32.Approx(n.Len(), 0) {
		return n, false
	}
	n.Normalize()
	return n, true
}

// meshFromOBJ converts the faces of a wavefront OBJ file, deriving
// per-face normals from the face planes. Invalid faces are dropped.
func meshFromOBJ(of *gobj.OBJFile, material csg.Material) *csg.Mesh {
	var polygons []*csg.Polygon
	verts := of.Verts()
	for _, face := range of.Polys() {
		positions := make([]csg.Vector, len(face))
		for i, idx := range face {
			v := verts[idx]
			positions[i] = csg.NewVector(v.X(), v.Y(), v.Z())
		}
		plane := csg.PlaneFromPoints(positions)
		if plane == nil {
			continue
		}
		verts := make([]csg.Vertex, len(face))
		for i, pos := range positions {
			verts[i] = csg.Vertex{Position: pos, Normal: plane.Normal}
		}
		if poly := csg.NewPolygon(verts, material); poly != nil {
			polygons = append(polygons, poly)
		}
	}
	return csg.NewMesh(polygons)
}

// meshToSTL triangulates every polygon of the mesh into an STL soup.
func meshToSTL(mesh *csg.Mesh) []stl.Triangle {
	var tris []stl.Triangle
	for _, p := range mesh.Polygons() {
		n := p.Plane().Normal
		facet := stl.Point{n.X, n.Y, n.Z}
		for _, tri := range p.Triangulate() {
			var t stl.Triangle
			t.N = facet
			for i, v := range tri.Vertices() {
				t.V[i] = stl.Point{
					v.Position.X,
					v.Position.Y,
					v.Position.Z,
				}
			}
			tris = append(tris, t)
		}
	}
	return tris
}

// writeMesh writes the mesh as binary STL to path, or to standard output
// if path is empty.
func writeMesh(mesh *csg.Mesh, path string) error {
	w := os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return stl.WriteBinary(w, meshToSTL(mesh))
}
