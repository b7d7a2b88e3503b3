package stl

import (
	"fmt"

	"github.com/archivemeta/stlmeta/pkg/geometry"
)

// Format identifies the detected STL encoding of a file.
type Format string

const (
	// FormatASCII is the text encoding ("solid ... endsolid").
	FormatASCII Format = "ASCII"
	// FormatBinary is the fixed-record binary encoding.
	FormatBinary Format = "binary"
)

// Model represents a parsed STL solid. It is constructed once by a parser
// and is read-only afterward; the validator never mutates it.
type Model struct {
	Name      string
	Format    Format
	Triangles []geometry.Triangle

	// Warnings collects non-fatal conditions observed while parsing,
	// such as a nameless solid line. Parse errors are never recorded
	// here; they abort the parse.
	Warnings []string
}

// NewModel creates an empty model
func NewModel(name string, format Format) *Model {
	return &Model{
		Name:      name,
		Format:    format,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a triangle in file order
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

func (m *Model) warnf(format string, args ...interface{}) {
	m.Warnings = append(m.Warnings, fmt.Sprintf(format, args...))
}
