// Package icogrid turns a subdivided spherical triangulation into a complete
// discrete-topology and discrete-differential-geometry description of the mesh.
//
// 🚀 What is icogrid?
//
//	A pure-computation library that derives, from one subdivision level:
//		• Topology source: golden-ratio icosahedron + 4-way subdivision (icosphere/)
//		• Six CSR adjacency relations: Cell↔Cell, Cell→Edge, Edge→Cell,
//		  Edge→Vertex, Vertex→Cell, Vertex→Edge (adjacency/)
//		• Per-vertex tangent frames, cyclic angular edge ordering and
//		  reference angle offsets (frames/)
//		• Angle-deficit Gaussian curvature and the sparse exterior-derivative
//		  operators d0 (E×V) and d1 (F×E) (dec/)
//		• Integer CSR sparse matrices with a gonum dense export (sparse/)
//		• One immutable, cheaply shareable snapshot façade (grid/)
//
// ✨ Why choose icogrid?
//
//   - Deterministic – identical edge numbering across every independently
//     built relation, identical output for identical subdivision level
//   - Exacting invariants – closed-manifold adjacency, d1·d0 = 0,
//     Gauss–Bonnet Σκ = 4π, all covered by tests
//   - Share-friendly – a Grid is an O(1)-copy handle onto one immutable
//     snapshot; readers never coordinate
//
// Under the hood, everything is organized under six subpackages:
//
//	icosphere/ — subdivided-icosahedron vertex positions and triangle list
//	adjacency/ — kind-tagged CSR container + the six relation builders
//	frames/    — vertex tangent frames, angular ordering, angle offsets
//	dec/       — discrete exterior calculus: curvature, d0, d1, connection RHS
//	sparse/    — integer COO/CSR matrices (export to gonum mat.Dense)
//	grid/      — the immutable snapshot façade and render-geometry export
//
// Quick ASCII example:
//
//	        v0
//	       /  \
//	     e0    e1        one triangular cell, three canonical edges;
//	     /      \        every edge of a closed icosphere borders
//	   v1---e2---v2      exactly two cells.
//
// The trivial-connection linear solve is a deliberate, currently-absent
// extension point: dec assembles the Poisson right-hand side and stops there.
//
//	go get github.com/katalvlaran/icogrid
package icogrid
