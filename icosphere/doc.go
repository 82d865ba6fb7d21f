// Package icosphere generates subdivided icosahedral triangulations of the
// unit sphere — the raw topology source every other icogrid package consumes.
//
// What:
//
//   - New(k) builds the canonical 12-vertex icosahedron (poles on ±Y, two
//     pentagonal rings) and applies k rounds of 4-way triangle subdivision,
//     projecting every vertex back onto the unit sphere.
//   - Mesh exposes Points (unit positions) and Faces (flat triangle-vertex
//     index list, fixed outward winding).
//
// Why:
//
//   - Downstream relation builders need a deterministic, closed 2-manifold
//     triangle list; the subdivided icosahedron is the standard one for
//     sphere grids (12 degree-5 vertices, everything else degree 6).
//
// Complexity:
//
//   - New(k): O(4^k) time and memory (V = 10·4^k + 2, F = 20·4^k).
//
// Errors:
//
//   - ErrNegativeSubdivision: requested subdivision level is negative.
//
// Determinism: identical level → identical Points and Faces, element for
// element. Midpoint vertices are numbered by first sight during an in-order
// face scan, the same memoized-counter discipline the adjacency package uses
// for edge ids.
package icosphere
