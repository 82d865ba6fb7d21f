package adjacency

import "fmt"

// Kind is the sealed marker interface for relation kinds. The six kinds below
// are its only implementations; they carry no data and exist purely so that
// two CSR relations over different kinds are distinct, non-interchangeable
// types.
type Kind interface{ relationKind() }

type (
	// Cell tags the Cell→Cell relation (neighbor cell across each local edge).
	Cell struct{}
	// CellEdge tags the Cell→Edge relation (three edge ids per cell, local order).
	CellEdge struct{}
	// EdgeCell tags the Edge→Cell relation (primary cell in slot 0, other in slot 1).
	EdgeCell struct{}
	// EdgeVertex tags the Edge→Vertex relation (canonical lower, then higher).
	EdgeVertex struct{}
	// VertexCell tags the Vertex→Cell relation (incident cells per vertex).
	VertexCell struct{}
	// VertexEdge tags the Vertex→Edge relation (incident edges per vertex;
	// angularly sorted after frames.Sort, insertion order before).
	VertexEdge struct{}
)

func (Cell) relationKind()       {}
func (CellEdge) relationKind()   {}
func (EdgeCell) relationKind()   {}
func (EdgeVertex) relationKind() {}
func (VertexCell) relationKind() {}
func (VertexEdge) relationKind() {}

// CSR is a compressed one-to-many relation: neighbors of entity i are
// indices[offsets[i]:offsets[i+1]]. It is immutable once built; Neighbors,
// Offsets and Indices return live sub-slice views that callers must not
// mutate.
type CSR[K Kind] struct {
	offsets []uint32
	indices []uint32
}

// FromRaw wraps an existing offsets+indices encoding as a CSR of kind K,
// validating shape: offsets non-empty, offsets[0] == 0, non-decreasing, and
// len(indices) equal to the final offset.
// Time: O(n).
func FromRaw[K Kind](offsets, indices []uint32) (*CSR[K], error) {
	if len(offsets) == 0 || offsets[0] != 0 {
		return nil, ErrBadOffsets
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("offsets[%d] < offsets[%d]: %w", i, i-1, ErrBadOffsets)
		}
	}
	if int(offsets[len(offsets)-1]) != len(indices) {
		return nil, ErrBadIndices
	}

	return &CSR[K]{offsets: offsets, indices: indices}, nil
}

// newCSR wraps builder-produced sequences without revalidating shape.
func newCSR[K Kind](offsets, indices []uint32) *CSR[K] {
	return &CSR[K]{offsets: offsets, indices: indices}
}

// Len returns the number of entities in the relation's domain. Time: O(1).
func (a *CSR[K]) Len() int { return len(a.offsets) - 1 }

// Degree returns the number of neighbors of entity i. Time: O(1).
func (a *CSR[K]) Degree(i int) int {
	return int(a.offsets[i+1] - a.offsets[i])
}

// Neighbors returns the neighbor ids of entity i as a read-only view.
// Time: O(1).
func (a *CSR[K]) Neighbors(i int) []uint32 {
	return a.indices[a.offsets[i]:a.offsets[i+1]]
}

// Offsets returns the raw offsets sequence (length Len()+1). Time: O(1).
func (a *CSR[K]) Offsets() []uint32 { return a.offsets }

// Indices returns the raw flat indices sequence. Time: O(1).
func (a *CSR[K]) Indices() []uint32 { return a.indices }
