package adjacency

// The six builders below are each a pure function of the raw face list (plus
// the vertex count where the domain is vertices). They assume Validate has
// accepted the input; on a non-manifold face list their output is undefined.

// uniformOffsets returns the offsets sequence for n rows of fixed width w.
func uniformOffsets(n, w int) []uint32 {
	offsets := make([]uint32, n+1)
	for i := range offsets {
		offsets[i] = uint32(i * w)
	}
	return offsets
}

// EdgeCount returns the number of unique edges in the face list.
// Time: O(F).
func EdgeCount(faces []uint32) int {
	return scanEdges(faces).edgeCount()
}

// NewCellEdge builds the Cell→Edge relation: row c holds the 3 edge ids of
// cell c in local-edge order.
// Time: O(F).
func NewCellEdge(faces []uint32) *CSR[CellEdge] {
	s := scanEdges(faces)
	return newCSR[CellEdge](uniformOffsets(len(faces)/3, 3), s.cellEdges)
}

// NewEdgeVertex builds the Edge→Vertex relation: row e holds edge e's
// canonical (lower, higher) vertex pair.
// Time: O(F).
func NewEdgeVertex(faces []uint32) *CSR[EdgeVertex] {
	s := scanEdges(faces)
	indices := make([]uint32, s.edgeCount()*2)
	for e, pair := range s.pairs {
		indices[e*2] = pair[0]
		indices[e*2+1] = pair[1]
	}
	return newCSR[EdgeVertex](uniformOffsets(s.edgeCount(), 2), indices)
}

// NewEdgeCell builds the Edge→Cell relation: slot 0 of row e is the cell in
// which edge e's vertex pair appears in increasing order, slot 1 the other.
// Time: O(F).
func NewEdgeCell(faces []uint32) *CSR[EdgeCell] {
	s := scanEdges(faces)
	indices := make([]uint32, s.edgeCount()*2)
	for e := 0; e < s.edgeCount(); e++ {
		indices[e*2] = s.primary[e]
		indices[e*2+1] = s.secondary[e]
	}
	return newCSR[EdgeCell](uniformOffsets(s.edgeCount(), 2), indices)
}

// NewCellCell builds the Cell→Cell relation: row c holds, per local edge, the
// cell on the other side of that edge.
// Time: O(F).
func NewCellCell(faces []uint32) *CSR[Cell] {
	cellEdge := NewCellEdge(faces)
	edgeCell := NewEdgeCell(faces)

	cells := cellEdge.Len()
	indices := make([]uint32, 0, cells*3)
	for c := 0; c < cells; c++ {
		for _, e := range cellEdge.Neighbors(c) {
			pair := edgeCell.Neighbors(int(e))
			if pair[0] == uint32(c) {
				indices = append(indices, pair[1])
			} else {
				indices = append(indices, pair[0])
			}
		}
	}
	return newCSR[Cell](uniformOffsets(cells, 3), indices)
}

// NewVertexCell builds the Vertex→Cell relation by counting sort: one pass
// counts incidences, a prefix sum fixes row offsets, a final pass scatters
// cell ids through per-vertex write cursors.
// Time: O(F + V).
func NewVertexCell(faces []uint32, vertexCount int) *CSR[VertexCell] {
	counts := make([]uint32, vertexCount)
	for _, v := range faces {
		counts[v]++
	}

	offsets := make([]uint32, vertexCount+1)
	var running uint32
	for v, n := range counts {
		offsets[v] = running
		running += n
	}
	offsets[vertexCount] = running

	cursor := make([]uint32, vertexCount)
	copy(cursor, offsets[:vertexCount])
	indices := make([]uint32, running)
	for i, v := range faces {
		indices[cursor[v]] = uint32(i / 3)
		cursor[v]++
	}

	return newCSR[VertexCell](offsets, indices)
}

// NewVertexEdge builds the Vertex→Edge relation. Rows are in insertion order
// (ascending edge id per vertex); frames.Sort re-orders them into cyclic
// angular order.
// Time: O(F + V).
func NewVertexEdge(faces []uint32, vertexCount int) *CSR[VertexEdge] {
	s := scanEdges(faces)

	counts := make([]uint32, vertexCount)
	for _, pair := range s.pairs {
		counts[pair[0]]++
		counts[pair[1]]++
	}

	offsets := make([]uint32, vertexCount+1)
	var running uint32
	for v, n := range counts {
		offsets[v] = running
		running += n
	}
	offsets[vertexCount] = running

	cursor := make([]uint32, vertexCount)
	copy(cursor, offsets[:vertexCount])
	indices := make([]uint32, running)
	for e, pair := range s.pairs {
		for _, v := range pair {
			indices[cursor[v]] = uint32(e)
			cursor[v]++
		}
	}

	return newCSR[VertexEdge](offsets, indices)
}
