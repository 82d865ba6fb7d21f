package grid

import (
	"fmt"

	"github.com/katalvlaran/icogrid/adjacency"
	"github.com/katalvlaran/icogrid/dec"
	"github.com/katalvlaran/icogrid/frames"
	"github.com/katalvlaran/icogrid/icosphere"
	"github.com/katalvlaran/icogrid/sparse"
	"gonum.org/v1/gonum/spatial/r3"
)

// Singularity prescribes an integer winding index at a vertex for the
// trivial-connection right-hand side.
type Singularity = dec.Singularity

// CellData holds a cell's three vertex ids in winding order and its centroid.
type CellData struct {
	Center   r3.Vec
	Vertices [3]uint32
}

// Grid is a handle onto one immutable snapshot. The zero Grid is invalid;
// obtain one from New. Copying a Grid copies a pointer — O(1), no structural
// copy — so handles may be shared freely across goroutines: after
// construction no field is ever mutated.
type Grid struct {
	inner *inner
}

// inner is the snapshot itself. Everything is computed once, synchronously,
// in New, and read-only thereafter.
type inner struct {
	mesh         *icosphere.Mesh
	rel          *adjacency.Relations
	cells        []CellData
	angleOffsets []float64
	curvature    []float64
	d0, d1       *sparse.Matrix
}

// New builds the complete snapshot for one subdivision level: topology,
// validation, six adjacency relations, angular ordering of vertex fans,
// angle offsets, cell data, curvature, and the d0/d1 operators. Deterministic
// and pure: identical level → identical snapshot.
// Time: O(4^level).
func New(subdivisions int) (Grid, error) {
	mesh, err := icosphere.New(subdivisions)
	if err != nil {
		return Grid{}, fmt.Errorf("grid: topology source: %w", err)
	}

	rel, err := adjacency.BuildAll(mesh.Faces, mesh.VertexCount())
	if err != nil {
		return Grid{}, fmt.Errorf("grid: adjacency: %w", err)
	}

	sorted, err := frames.Sort(rel.VertexEdge, rel.EdgeVertex, mesh.Points)
	if err != nil {
		return Grid{}, fmt.Errorf("grid: angular ordering: %w", err)
	}
	rel.VertexEdge = sorted

	angleOffsets, err := frames.AngleOffsets(sorted, rel.EdgeVertex, mesh.Points)
	if err != nil {
		return Grid{}, fmt.Errorf("grid: angle offsets: %w", err)
	}

	cells := make([]CellData, mesh.CellCount())
	for c := range cells {
		base := c * 3
		v0, v1, v2 := mesh.Faces[base], mesh.Faces[base+1], mesh.Faces[base+2]
		center := r3.Scale(1.0/3.0, r3.Add(r3.Add(mesh.Points[v0], mesh.Points[v1]), mesh.Points[v2]))
		cells[c] = CellData{Center: center, Vertices: [3]uint32{v0, v1, v2}}
	}

	curvature := dec.GaussianCurvature(sorted, rel.EdgeVertex, mesh.Points)

	d0, err := dec.D0(rel.EdgeVertex, mesh.VertexCount())
	if err != nil {
		return Grid{}, fmt.Errorf("grid: d0: %w", err)
	}
	d1, err := dec.D1(rel.CellEdge, rel.EdgeVertex, mesh.Faces)
	if err != nil {
		return Grid{}, fmt.Errorf("grid: d1: %w", err)
	}

	return Grid{inner: &inner{
		mesh:         mesh,
		rel:          rel,
		cells:        cells,
		angleOffsets: angleOffsets,
		curvature:    curvature,
		d0:           d0,
		d1:           d1,
	}}, nil
}

// VertexCount returns V. Time: O(1).
func (g Grid) VertexCount() int { return g.inner.mesh.VertexCount() }

// EdgeCount returns E. Time: O(1).
func (g Grid) EdgeCount() int { return g.inner.rel.EdgeVertex.Len() }

// CellCount returns F. Time: O(1).
func (g Grid) CellCount() int { return g.inner.mesh.CellCount() }

// Points returns the unit-sphere vertex positions (read-only view).
func (g Grid) Points() []r3.Vec { return g.inner.mesh.Points }

// Faces returns the flat triangle-vertex index list (read-only view).
func (g Grid) Faces() []uint32 { return g.inner.mesh.Faces }

// CellCell returns the Cell→Cell relation.
func (g Grid) CellCell() *adjacency.CSR[adjacency.Cell] { return g.inner.rel.CellCell }

// CellEdge returns the Cell→Edge relation.
func (g Grid) CellEdge() *adjacency.CSR[adjacency.CellEdge] { return g.inner.rel.CellEdge }

// EdgeCell returns the Edge→Cell relation.
func (g Grid) EdgeCell() *adjacency.CSR[adjacency.EdgeCell] { return g.inner.rel.EdgeCell }

// EdgeVertex returns the Edge→Vertex relation.
func (g Grid) EdgeVertex() *adjacency.CSR[adjacency.EdgeVertex] { return g.inner.rel.EdgeVertex }

// VertexCell returns the Vertex→Cell relation.
func (g Grid) VertexCell() *adjacency.CSR[adjacency.VertexCell] { return g.inner.rel.VertexCell }

// VertexEdge returns the Vertex→Edge relation, angularly sorted.
func (g Grid) VertexEdge() *adjacency.CSR[adjacency.VertexEdge] { return g.inner.rel.VertexEdge }

// Cells returns per-cell vertex ids and centroids (read-only view).
func (g Grid) Cells() []CellData { return g.inner.cells }

// AngleOffsets returns the per-vertex reference angles (read-only view).
func (g Grid) AngleOffsets() []float64 { return g.inner.angleOffsets }

// Curvature returns the per-vertex discrete Gaussian curvature (read-only view).
func (g Grid) Curvature() []float64 { return g.inner.curvature }

// D0 returns the edges×vertices exterior-derivative operator.
func (g Grid) D0() *sparse.Matrix { return g.inner.d0 }

// D1 returns the cells×edges exterior-derivative operator.
func (g Grid) D1() *sparse.Matrix { return g.inner.d1 }

// TrivialConnectionRHS assembles the trivial-connection right-hand side for
// the given singularity prescription against this grid's curvature.
func (g Grid) TrivialConnectionRHS(singularities []Singularity) ([]float64, error) {
	return dec.TrivialConnectionRHS(g.inner.curvature, singularities)
}
