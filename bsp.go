package csg

import (
	assert "github.com/arl/assertgo"
)

// clipRule selects which fragments survive a BSP clip, relative to the
// volume the tree was built from. The Equal variants additionally keep
// fragments lying exactly on the volume's boundary; pairing a strict rule
// on one operand with a non-strict one on the other is what keeps a
// shared surface from appearing twice in a boolean result.
type clipRule int

const (
	greaterThan clipRule = iota // strictly outside
	greaterThanEqual            // outside or on the boundary
	lessThan                    // strictly inside
	lessThanEqual               // inside or on the boundary
)

func (r clipRule) keepsOutside() bool {
	return r == greaterThan || r == greaterThanEqual
}

func (r clipRule) keepsInside() bool {
	return r == lessThan || r == lessThanEqual
}

// bspNode is a binary space partition over a polygon soup. Every node
// splits space by the plane of the first polygon routed into it: polygons
// on that plane facing the same way stay on the node, the rest recurse
// into the front and back children. A nil *bspNode is the empty leaf.
//
// For a closed, anticlockwise-wound polygon soup, the solid's interior is
// exactly the set of points behind every plane on some root-to-leaf path:
// fragments falling off the back of the tree are inside the solid,
// fragments falling off the front are outside.
type bspNode struct {
	plane    Plane
	polygons []*Polygon
	front    *bspNode
	back     *bspNode
}

// newBSP builds a tree from a polygon soup. Spanning polygons are split
// during construction; the id counter threads through so their fragments
// stay mergeable. Returns nil for an empty soup.
func newBSP(polygons []*Polygon, id *int) *bspNode {
	if len(polygons) == 0 {
		return nil
	}
	node := &bspNode{plane: polygons[0].plane}
	var coplanar, front, back []*Polygon
	for _, polygon := range polygons {
		polygon.split(node.plane, &coplanar, &front, &back, id)
	}
	for _, polygon := range coplanar {
		if polygon.plane.Normal.Dot(node.plane.Normal) > 0 {
			node.polygons = append(node.polygons, polygon)
		} else {
			back = append(back, polygon)
		}
	}
	assert.True(len(node.polygons) > 0, "node owns no coplanar polygon")
	node.front = newBSP(front, id)
	node.back = newBSP(back, id)
	return node
}

// clip returns the fragments of polygons that satisfy keeping, relative
// to the volume the tree encodes. Spanning polygons are split on the way
// down; at an empty leaf, fragments on the front are kept by the outside
// rules and fragments on the back by the inside rules.
//
// A fragment coplanar with a node plane is on the volume's boundary if it
// faces the same way as the node, and just inside it if it faces the
// opposite way. Same-facing fragments are routed so that the non-strict
// rules keep them and the strict ones drop them; opposite-facing
// fragments always sink to the back.
func (n *bspNode) clip(polygons []*Polygon, keeping clipRule, id *int) []*Polygon {
	if n == nil {
		if keeping.keepsOutside() {
			return polygons
		}
		return nil
	}

	var coplanar, front, back []*Polygon
	for _, polygon := range polygons {
		polygon.split(n.plane, &coplanar, &front, &back, id)
	}
	for _, polygon := range coplanar {
		sameFacing := polygon.plane.Normal.Dot(n.plane.Normal) > 0
		if sameFacing && (keeping == greaterThanEqual || keeping == lessThan) {
			front = append(front, polygon)
		} else {
			back = append(back, polygon)
		}
	}

	var result []*Polygon
	if n.front != nil {
		result = append(result, n.front.clip(front, keeping, id)...)
	} else if keeping.keepsOutside() {
		result = append(result, front...)
	}
	if n.back != nil {
		result = append(result, n.back.clip(back, keeping, id)...)
	} else if keeping.keepsInside() {
		result = append(result, back...)
	}
	return result
}
