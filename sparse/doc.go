// Package sparse provides small integer-valued sparse matrices in triplet
// (COO) and compressed-row (CSR) form — just enough linear algebra to carry
// the mesh incidence operators and verify their chain-complex identities.
//
// What:
//
//   - COO collects (row, col, value) triplets in any order; ToCSR sorts,
//     merges duplicates and drops explicit zeros.
//   - Matrix is an immutable CSR with At/Row access, sparse-sparse Mul,
//     RowSums, MaxAbs, and a Dense export to gonum's mat.Dense for numeric
//     collaborators.
//
// Why:
//
//   - The exterior-derivative operators d0 and d1 are {−1,0,+1}-valued and
//     extremely sparse (≤ 2–3 entries per row); an integer CSR keeps the
//     boundary-of-boundary check d1·d0 = 0 exact, with no floating error.
//
// Complexity:
//
//   - ToCSR: O(nnz log nnz). Mul: O(Σ flops) with a dense scratch row.
//   - At: O(log nnz(row)). RowSums/MaxAbs/Dense: O(nnz).
//
// Errors:
//
//   - ErrBadDims: non-positive matrix dimensions.
//   - ErrEntryRange: a triplet lies outside the declared dimensions.
//   - ErrDimensionMismatch: inner dimensions disagree in Mul.
package sparse
