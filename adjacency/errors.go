package adjacency

import "errors"

// Sentinel errors for adjacency construction and validation.
var (
	// ErrMalformedFaces indicates the face list itself is unusable: its length
	// is not a multiple of 3, a vertex id is out of range, or a triangle
	// repeats a vertex.
	ErrMalformedFaces = errors.New("adjacency: face list malformed")

	// ErrNonManifold indicates an edge that does not border exactly two cells,
	// violating the closed-2-manifold precondition.
	ErrNonManifold = errors.New("adjacency: mesh is not a closed 2-manifold")

	// ErrIsolatedVertex indicates a vertex with no incident edges.
	ErrIsolatedVertex = errors.New("adjacency: vertex with no incident edges")

	// ErrBadOffsets indicates a CSR offsets sequence that is empty, does not
	// start at zero, or decreases.
	ErrBadOffsets = errors.New("adjacency: offsets must start at zero and be non-decreasing")

	// ErrBadIndices indicates a CSR indices sequence whose length differs from
	// the final offset.
	ErrBadIndices = errors.New("adjacency: indices length must equal final offset")
)
