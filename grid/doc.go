// Package grid bundles the whole icogrid pipeline behind one immutable,
// cheaply shareable snapshot: topology source, six adjacency relations,
// angularly sorted vertex fans, angle offsets, per-cell data, curvature and
// the d0/d1 exterior-derivative operators.
//
// What:
//
//   - New(k) is a pure, deterministic function of the subdivision level. It
//     validates the topology, builds every relation and derived quantity
//     synchronously, and either returns a complete snapshot or fails
//     outright — a partially built snapshot is never exposed.
//   - Grid is a handle: copying one is an O(1) pointer copy onto the same
//     immutable snapshot, never a structural copy. Independent consumers
//     (a render loop, a simulation loop) hold handles to one logical
//     instance and query it concurrently without coordination.
//   - RenderMesh exports positions (scaled to a target radius), unit outward
//     normals and the flat triangle index list for a triangle-list renderer.
//
// Why:
//
//   - Downstream consumers trust every invariant unconditionally; funneling
//     construction through one validated façade keeps that trust safe.
//
// Complexity:
//
//   - New(k): O(4^k) time and memory; everything after construction is O(1)
//     accessor work.
//
// Errors:
//
//   - Construction propagates icosphere.ErrNegativeSubdivision and the
//     adjacency/frames validation sentinels; there is no partial or degraded
//     mode, and re-invoking with corrected input is the only retry policy.
package grid
