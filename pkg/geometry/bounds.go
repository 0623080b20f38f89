package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min r3.Vec
	Max r3.Vec
}

// NewBoundingBox creates a new, empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: r3.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point r3.Vec) {
	b.Min = minVec(b.Min, point)
	b.Max = maxVec(b.Max, point)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return r3.Norm(b.Size())
}

// minVec returns the componentwise minimum of two vectors. r3 has no
// componentwise min/max.
func minVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		Z: math.Min(a.Z, b.Z),
	}
}

// maxVec returns the componentwise maximum of two vectors.
func maxVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Max(a.X, b.X),
		Y: math.Max(a.Y, b.Y),
		Z: math.Max(a.Z, b.Z),
	}
}
