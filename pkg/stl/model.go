package stl

import (
	"github.com/mcanet/stlvolume/pkg/geometry"
)

// Model represents a complete STL model. It is created once by the decoder
// and not mutated afterwards.
type Model struct {
	Name      string
	Triangles []geometry.Triangle

	// TrailingBytes counts bytes found after the last declared triangle
	// record of a binary file. Advisory only; the decode still succeeds.
	TrailingBytes int
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the model contains no triangles.
func (m *Model) IsEmpty() bool {
	return len(m.Triangles) == 0
}
