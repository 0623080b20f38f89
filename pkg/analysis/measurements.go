// Package analysis computes geometric properties of an STL model: enclosed
// volume, surface area and bounding box. All functions are pure and perform
// no I/O; the model is never mutated.
package analysis

import (
	"math"

	"github.com/mcanet/stlvolume/pkg/geometry"
	"github.com/mcanet/stlvolume/pkg/stl"
)

// SignedVolume returns the signed enclosed volume of the model in cubic
// native units, computed as the sum of signed tetrahedron volumes between
// each triangle and the origin. The sign depends on the winding order; a
// consistently outward-wound closed mesh yields a positive value.
//
// Triangles are accumulated in file order with a single running sum so that
// repeated runs over the same input are bit-for-bit reproducible.
func SignedVolume(m *stl.Model) float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.SignedVolume()
	}
	return total
}

// Volume returns the enclosed volume of the model in cubic native units.
// It is the absolute value of SignedVolume, so a mesh with uniformly
// reversed winding reports the same volume. An empty model has zero volume.
func Volume(m *stl.Model) float64 {
	return math.Abs(SignedVolume(m))
}

// SurfaceArea returns the total surface area of the model in square native
// units. Degenerate triangles contribute zero. An empty model has zero area.
func SurfaceArea(m *stl.Model) float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// BoundingBox returns the axis-aligned bounding box over all vertices.
// The second return value is false for an empty model, for which no box is
// defined.
func BoundingBox(m *stl.Model) (geometry.BoundingBox, bool) {
	if m.IsEmpty() {
		return geometry.BoundingBox{}, false
	}
	bbox := geometry.NewBoundingBox()
	for _, t := range m.Triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox, true
}
