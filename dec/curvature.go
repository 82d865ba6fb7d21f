package dec

import (
	"math"

	"github.com/katalvlaran/icogrid/adjacency"
	"gonum.org/v1/gonum/spatial/r3"
)

// GaussianCurvature computes the discrete (angle-deficit) Gaussian curvature
// at every vertex: 2π minus the sum of angles between consecutive edge
// direction vectors around the vertex's cyclic fan. The Vertex→Edge relation
// must already be angularly sorted (frames.Sort); the first edge is revisited
// after the last to close the cycle.
// Time: O(E).
func GaussianCurvature(sorted *adjacency.CSR[adjacency.VertexEdge], ev *adjacency.CSR[adjacency.EdgeVertex], points []r3.Vec) []float64 {
	curvature := make([]float64, sorted.Len())

	for v := 0; v < sorted.Len(); v++ {
		row := sorted.Neighbors(v)
		if len(row) == 0 {
			continue
		}

		angleSum := 0.0
		var prev r3.Vec
		for i := 0; i <= len(row); i++ {
			e := row[i%len(row)]
			pair := ev.Neighbors(int(e))
			other := pair[0]
			if other == uint32(v) {
				other = pair[1]
			}
			dir := r3.Sub(points[other], points[v])

			if i > 0 {
				angleSum += angleBetween(prev, dir)
			}
			prev = dir
		}

		curvature[v] = 2*math.Pi - angleSum
	}

	return curvature
}

// angleBetween returns the angle between two vectors, with the cosine clamped
// against rounding before Acos.
func angleBetween(a, b r3.Vec) float64 {
	c := r3.Cos(a, b)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}
