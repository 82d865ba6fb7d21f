package dec

import (
	"github.com/katalvlaran/icogrid/adjacency"
	"github.com/katalvlaran/icogrid/sparse"
)

// D0 builds the edges×vertices exterior-derivative operator: row e carries −1
// at edge e's canonical-lower vertex and +1 at its canonical-higher vertex.
// Time: O(E).
func D0(ev *adjacency.CSR[adjacency.EdgeVertex], vertexCount int) (*sparse.Matrix, error) {
	coo, err := sparse.NewCOO(ev.Len(), vertexCount)
	if err != nil {
		return nil, err
	}
	for e := 0; e < ev.Len(); e++ {
		pair := ev.Neighbors(e)
		coo.Add(e, int(pair[0]), -1)
		coo.Add(e, int(pair[1]), +1)
	}
	return coo.ToCSR()
}

// D1 builds the cells×edges exterior-derivative operator. For each cell and
// each of its 3 local edges (local start vertex per the cell's fixed
// winding), the entry is −1 when the local start vertex is the edge's
// canonical-lower vertex, +1 otherwise — the sign encodes whether the cell
// traverses the edge along or against its canonical orientation.
// Time: O(F).
func D1(ce *adjacency.CSR[adjacency.CellEdge], ev *adjacency.CSR[adjacency.EdgeVertex], faces []uint32) (*sparse.Matrix, error) {
	coo, err := sparse.NewCOO(ce.Len(), ev.Len())
	if err != nil {
		return nil, err
	}
	for c := 0; c < ce.Len(); c++ {
		base := c * 3
		row := ce.Neighbors(c)
		for k, e := range row {
			start := faces[base+k]
			lower := ev.Neighbors(int(e))[0]
			sign := +1
			if start == lower {
				sign = -1
			}
			coo.Add(c, int(e), sign)
		}
	}
	return coo.ToCSR()
}
