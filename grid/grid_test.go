package grid_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/icogrid/grid"
	"github.com/katalvlaran/icogrid/icosphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_BaseCase pins the subdivision-0 snapshot: 12 vertices, 30 edges,
// 20 cells, Euler characteristic 2, every vertex degree 5.
func TestNew_BaseCase(t *testing.T) {
	g, err := grid.New(0)
	require.NoError(t, err)

	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 30, g.EdgeCount())
	assert.Equal(t, 20, g.CellCount())
	assert.Equal(t, 2, g.VertexCount()-g.EdgeCount()+g.CellCount())

	for v := 0; v < g.VertexCount(); v++ {
		assert.Equalf(t, 5, g.VertexEdge().Degree(v), "vertex %d edge degree", v)
		assert.Equalf(t, 5, g.VertexCell().Degree(v), "vertex %d cell degree", v)
	}
}

// TestNew_Errors propagates topology-source failures.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New(-3)
	assert.ErrorIs(t, err, icosphere.ErrNegativeSubdivision)
}

// TestGrid_ClosedFan verifies Vertex→Edge and Vertex→Cell degrees agree at
// every vertex (the closed-fan property of a closed 2-manifold).
func TestGrid_ClosedFan(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	for v := 0; v < g.VertexCount(); v++ {
		assert.Equalf(t, g.VertexCell().Degree(v), g.VertexEdge().Degree(v), "vertex %d", v)
	}
}

// TestGrid_GaussBonnet verifies the snapshot's curvature sums to 4π.
func TestGrid_GaussBonnet(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	total := 0.0
	for _, k := range g.Curvature() {
		total += k
	}
	assert.InDelta(t, 4*math.Pi, total, 1e-8)
}

// TestGrid_Operators verifies the exported operators still satisfy the
// chain-complex identities end to end.
func TestGrid_Operators(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)

	rows, cols := g.D0().Dims()
	assert.Equal(t, g.EdgeCount(), rows)
	assert.Equal(t, g.VertexCount(), cols)

	rows, cols = g.D1().Dims()
	assert.Equal(t, g.CellCount(), rows)
	assert.Equal(t, g.EdgeCount(), cols)

	product, err := g.D1().Mul(g.D0())
	require.NoError(t, err)
	assert.Equal(t, 0, product.MaxAbs())

	for _, sum := range g.D0().RowSums() {
		assert.Zero(t, sum)
	}
}

// TestGrid_CellData verifies centroids and vertex triples match the raw faces.
func TestGrid_CellData(t *testing.T) {
	g, err := grid.New(0)
	require.NoError(t, err)

	cells := g.Cells()
	require.Len(t, cells, g.CellCount())
	faces := g.Faces()
	points := g.Points()

	for c, cell := range cells {
		base := c * 3
		assert.Equal(t, faces[base], cell.Vertices[0])
		assert.Equal(t, faces[base+1], cell.Vertices[1])
		assert.Equal(t, faces[base+2], cell.Vertices[2])

		wantX := (points[cell.Vertices[0]].X + points[cell.Vertices[1]].X + points[cell.Vertices[2]].X) / 3
		assert.InDeltaf(t, wantX, cell.Center.X, 1e-12, "cell %d centroid", c)
	}
}

// TestGrid_HandleSharing verifies that copying a Grid shares the underlying
// snapshot rather than deep-copying it.
func TestGrid_HandleSharing(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	h := g // handle copy

	// Shared backing arrays: same first-element addresses.
	assert.Same(t, &g.Points()[0], &h.Points()[0])
	assert.Same(t, &g.AngleOffsets()[0], &h.AngleOffsets()[0])
	assert.Same(t, &g.VertexEdge().Indices()[0], &h.VertexEdge().Indices()[0])
}

// TestGrid_ConcurrentReaders exercises many goroutines querying one shared
// snapshot without coordination.
func TestGrid_ConcurrentReaders(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := g // each reader holds its own handle
			total := 0.0
			for _, k := range h.Curvature() {
				total += k
			}
			if math.Abs(total-4*math.Pi) > 1e-8 {
				t.Errorf("curvature total %g", total)
			}
			for v := 0; v < h.VertexCount(); v++ {
				if h.VertexEdge().Degree(v) != h.VertexCell().Degree(v) {
					t.Errorf("vertex %d fan mismatch", v)
				}
			}
		}()
	}
	wg.Wait()
}

// TestGrid_RenderMesh verifies buffer layout, scaling and unit normals.
func TestGrid_RenderMesh(t *testing.T) {
	const radius = 25.0
	g, err := grid.New(1)
	require.NoError(t, err)
	rm := g.RenderMesh(radius)

	require.Len(t, rm.Positions, g.VertexCount()*3)
	require.Len(t, rm.Normals, g.VertexCount()*3)
	require.Len(t, rm.Indices, g.CellCount()*3)

	for v := 0; v < g.VertexCount(); v++ {
		nx := float64(rm.Normals[v*3])
		ny := float64(rm.Normals[v*3+1])
		nz := float64(rm.Normals[v*3+2])
		assert.InDeltaf(t, 1.0, math.Sqrt(nx*nx+ny*ny+nz*nz), 1e-6, "vertex %d normal length", v)

		assert.InDeltaf(t, radius*nx, float64(rm.Positions[v*3]), 1e-4, "vertex %d position x", v)
		assert.InDeltaf(t, radius*ny, float64(rm.Positions[v*3+1]), 1e-4, "vertex %d position y", v)
		assert.InDeltaf(t, radius*nz, float64(rm.Positions[v*3+2]), 1e-4, "vertex %d position z", v)
	}
}

// TestGrid_TrivialConnectionRHS verifies the façade-level assembly: with a
// total index of 2 the entries cancel curvature by Gauss–Bonnet.
func TestGrid_TrivialConnectionRHS(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)

	rhs, err := g.TrivialConnectionRHS([]grid.Singularity{
		{Vertex: 0, Index: 2},
	})
	require.NoError(t, err)

	total := 0.0
	for _, x := range rhs {
		total += x
	}
	assert.InDelta(t, 0.0, total, 1e-8)
}

// TestNew_Deterministic verifies two snapshots of one level agree exactly.
func TestNew_Deterministic(t *testing.T) {
	a, err := grid.New(1)
	require.NoError(t, err)
	b, err := grid.New(1)
	require.NoError(t, err)

	assert.Equal(t, a.VertexEdge().Indices(), b.VertexEdge().Indices())
	assert.Equal(t, a.CellEdge().Indices(), b.CellEdge().Indices())
	assert.Equal(t, a.AngleOffsets(), b.AngleOffsets())
	assert.Equal(t, a.Curvature(), b.Curvature())
}
