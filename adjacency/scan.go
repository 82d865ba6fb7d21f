package adjacency

// edgeScan is the single canonical pass over the face list that every builder
// shares. It assigns edge ids by first sight (cells in increasing id order,
// local edges (v0,v1),(v1,v2),(v2,v0) within each cell), so independently
// built relations always agree on the numbering.
type edgeScan struct {
	// pairs[e] is edge e's canonical (lower, higher) vertex pair.
	pairs [][2]uint32
	// primary[e] is the cell in which edge e's pair appears in increasing
	// order; secondary[e] is the other cell. Meaningful only when seen[e] == 2.
	primary   []uint32
	secondary []uint32
	// seen[e] counts how many cells edge e was encountered in.
	seen []uint32
	// cellEdges holds the 3 edge ids of each cell in local order (flat, 3F).
	cellEdges []uint32
}

// edgeCount returns the number of unique edges discovered. Time: O(1).
func (s *edgeScan) edgeCount() int { return len(s.pairs) }

// scanEdges runs the canonical scan. Time: O(F); Memory: O(E + F).
func scanEdges(faces []uint32) *edgeScan {
	cells := len(faces) / 3
	s := &edgeScan{cellEdges: make([]uint32, 0, len(faces))}
	ids := make(map[[2]uint32]uint32, cells*2)

	for c := 0; c < cells; c++ {
		base := c * 3
		verts := [3]uint32{faces[base], faces[base+1], faces[base+2]}

		for k := 0; k < 3; k++ {
			v0, v1 := verts[k], verts[(k+1)%3]
			key := [2]uint32{min(v0, v1), max(v0, v1)}

			id, ok := ids[key]
			if !ok {
				id = uint32(len(s.pairs))
				ids[key] = id
				s.pairs = append(s.pairs, key)
				s.primary = append(s.primary, 0)
				s.secondary = append(s.secondary, 0)
				s.seen = append(s.seen, 0)
			}

			if v0 < v1 {
				s.primary[id] = uint32(c)
			} else {
				s.secondary[id] = uint32(c)
			}
			s.seen[id]++
			s.cellEdges = append(s.cellEdges, id)
		}
	}

	return s
}
