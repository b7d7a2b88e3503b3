package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Vertices returns the three vertices in file order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}

// EdgeCross returns the cross product of the edge vectors (V2-V1) and
// (V3-V1). Its direction is the outward normal implied by the vertex
// winding; it is the zero vector for degenerate facets.
func (t Triangle) EdgeCross() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2)
}

// CalculateNormal computes the unit normal implied by the vertex winding
func (t Triangle) CalculateNormal() Vector3 {
	return t.EdgeCross().Normalize()
}
