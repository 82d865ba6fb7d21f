// Package dec implements the discrete exterior calculus of a closed
// triangulated sphere: angle-deficit Gaussian curvature, the sparse
// exterior-derivative (incidence) operators d0 and d1, and the assembled
// right-hand side of the trivial-connection problem.
//
// What:
//
//   - GaussianCurvature: per-vertex 2π − Σ(angles between consecutive edge
//     directions around the angularly sorted fan). Exact zero at a flat
//     degree-6 vertex; the 12 degree-5 vertices of any icosphere carry the
//     positive curvature that sums to 4π (Gauss–Bonnet).
//   - D0 (E×V): per edge row, −1 at the canonical-lower vertex, +1 at the
//     canonical-higher vertex.
//   - D1 (F×E): per cell and local edge, −1 when the cell's local start
//     vertex is the edge's canonical-lower vertex, +1 otherwise.
//   - TrivialConnectionRHS: −curvature per vertex, plus 2π·index at each
//     prescribed singular vertex, so total prescribed curvature matches
//     total singularity index via Gauss–Bonnet.
//
// The linear solve of the trivial-connection system against d0/d1 is a
// deliberate, currently-absent extension point: SolveTrivialConnection
// returns ErrSolverUnimplemented, and no numerical method is chosen here.
//
// Complexity:
//
//   - GaussianCurvature: O(E). D0: O(E). D1: O(F).
//
// Errors:
//
//   - ErrDuplicateSingularity: a vertex id appears twice in the prescription.
//   - ErrSingularityRange: a prescribed vertex id is out of range.
//   - ErrSolverUnimplemented: the solve itself is not implemented.
package dec
