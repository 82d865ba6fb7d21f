package grid

// RenderMesh is render-ready geometry for a triangle-list renderer: three
// floats per vertex position (scaled to the target radius), three floats per
// unit outward normal, three indices per cell.
type RenderMesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// RenderMesh exports the grid's geometry buffers at the given sphere radius.
// The vertex positions already sit on the unit sphere, so the outward normal
// is the unscaled position.
// Time: O(V + F).
func (g Grid) RenderMesh(radius float64) RenderMesh {
	points := g.inner.mesh.Points

	positions := make([]float32, 0, len(points)*3)
	normals := make([]float32, 0, len(points)*3)
	for _, p := range points {
		positions = append(positions,
			float32(radius*p.X), float32(radius*p.Y), float32(radius*p.Z))
		normals = append(normals,
			float32(p.X), float32(p.Y), float32(p.Z))
	}

	indices := make([]uint32, len(g.inner.mesh.Faces))
	copy(indices, g.inner.mesh.Faces)

	return RenderMesh{Positions: positions, Normals: normals, Indices: indices}
}
