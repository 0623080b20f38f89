package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle represents a triangular facet in 3D space.
//
// Normal holds the normal exactly as stored in the source file. It may be
// zero, unnormalized, or disagree with the vertex winding, so orientation
// sensitive computations derive their own normal from the vertices.
type Triangle struct {
	Normal     r3.Vec
	V1, V2, V3 r3.Vec
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 r3.Vec) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// FacetNormal returns the unit normal derived from the vertex winding.
// It may disagree with the stored Normal value.
func (t Triangle) FacetNormal() r3.Vec {
	edge1 := r3.Sub(t.V2, t.V1)
	edge2 := r3.Sub(t.V3, t.V1)
	n := r3.Cross(edge1, edge2)
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// Area returns the surface area of the triangle. A degenerate triangle has
// zero area.
func (t Triangle) Area() float64 {
	edge1 := r3.Sub(t.V2, t.V1)
	edge2 := r3.Sub(t.V3, t.V1)
	return r3.Norm(r3.Cross(edge1, edge2)) / 2.0
}

// SignedVolume returns the signed volume of the tetrahedron formed by the
// triangle and the coordinate origin. Summed over a closed, consistently
// wound mesh this yields the enclosed volume by the divergence theorem.
func (t Triangle) SignedVolume() float64 {
	return r3.Dot(t.V1, r3.Cross(t.V2, t.V3)) / 6.0
}

// Reversed returns the triangle with its winding order flipped.
func (t Triangle) Reversed() Triangle {
	return Triangle{
		Normal: t.Normal,
		V1:     t.V1,
		V2:     t.V3,
		V3:     t.V2,
	}
}

// Center returns the centroid of the triangle
func (t Triangle) Center() r3.Vec {
	return r3.Scale(1.0/3.0, r3.Add(t.V1, r3.Add(t.V2, t.V3)))
}
