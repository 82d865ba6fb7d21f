// Package frames builds per-vertex local tangent frames on the sphere and
// uses them to order each vertex's incident edges into cyclic angular order.
//
// What:
//
//   - Sort re-orders every Vertex→Edge row by ascending angle in the vertex's
//     tangent plane, producing the angularly sorted relation downstream
//     curvature and connection code depends on.
//   - AngleOffsets computes each vertex's reference angle: the tangent-plane
//     angle of its first (sorted) incident edge, anchoring a consistent local
//     2D coordinate system at the vertex.
//
// Why:
//
//   - Angle-deficit curvature, closed-fan traversal and any consumer needing
//     local 2D coordinates require a consistent cyclic ordering, not the
//     insertion order the adjacency builder produces.
//
// Frame construction:
//
//	The vertex normal is its normalized position. The in-plane basis is
//	west = normal × up and north = west × normal (up is the global +Y axis),
//	both normalized. When |normal × up| falls below PoleTolerance the basis
//	degenerates; the frame is instead borrowed from the first incident edge's
//	other endpoint: that neighbor's west/north are projected onto the pole's
//	tangent plane and re-normalized. The general pass runs first, the pole
//	pass patches afterward.
//
// Complexity:
//
//   - Sort: O(Σ deg·log deg) ≈ O(E log 6). AngleOffsets: O(V).
//
// Errors:
//
//   - ErrDimensionMismatch: points length differs from the relation's domain.
//   - ErrEmptyVertex: a vertex has no incident edges (malformed topology).
//   - ErrDegenerateFrame: a pole's borrowed neighbor is itself a pole.
package frames
