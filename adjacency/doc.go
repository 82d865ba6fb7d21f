// Package adjacency derives the six CSR-encoded incidence relations of a
// closed triangulated sphere from its raw triangle-vertex index list.
//
// What:
//
//   - CSR[K] is a compressed (offsets+indices) one-to-many relation container,
//     tagged at the type level by a zero-size relation kind K so a Cell→Edge
//     relation can never be passed where a Vertex→Edge relation is expected.
//   - Six builders, each a pure function of the face list: NewCellCell,
//     NewCellEdge, NewEdgeCell, NewEdgeVertex, NewVertexCell, NewVertexEdge.
//   - Validate checks the closed-2-manifold preconditions every builder
//     trusts; BuildAll validates once and constructs all six concurrently.
//
// Why:
//
//   - Every downstream consumer (frames, dec, grid) navigates the mesh purely
//     through these relations; they must agree on one deterministic edge
//     numbering even though each is built independently.
//
// Edge numbering:
//
//	Scanning cells in increasing id order, and within a cell its three local
//	edges (v0,v1),(v1,v2),(v2,v0) in order, the first time a canonical
//	(min,max) vertex pair is seen it receives the next sequential edge id.
//	Every builder reproduces this numbering exactly.
//
// Complexity:
//
//   - Each builder: O(F) time, O(E) or O(F) memory.
//   - Validate: O(F + V). BuildAll: O(F) with six-way fan-out.
//
// Errors:
//
//   - ErrMalformedFaces: face list length not a multiple of 3, vertex id out
//     of range, or a degenerate (repeated-vertex) triangle.
//   - ErrNonManifold: some edge does not border exactly two cells.
//   - ErrIsolatedVertex: some vertex has no incident edge.
//   - ErrBadOffsets / ErrBadIndices: FromRaw given an inconsistent encoding.
package adjacency
