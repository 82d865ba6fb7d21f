package adjacency

import "fmt"

// Validate checks the preconditions every relation builder trusts: the face
// list is well-formed (length a multiple of 3, vertex ids in range, no
// repeated vertex within a triangle), every edge borders exactly two cells,
// and every vertex has at least one incident edge.
//
// A violation is fatal for the caller's construction: a partially built
// snapshot would be unsafe to expose, so grid.New aborts on the first error.
// Time: O(F + V).
func Validate(faces []uint32, vertexCount int) error {
	if len(faces)%3 != 0 {
		return fmt.Errorf("face list length %d not a multiple of 3: %w", len(faces), ErrMalformedFaces)
	}

	for c := 0; c*3 < len(faces); c++ {
		base := c * 3
		a, b, d := faces[base], faces[base+1], faces[base+2]
		if int(a) >= vertexCount || int(b) >= vertexCount || int(d) >= vertexCount {
			return fmt.Errorf("cell %d references a vertex ≥ %d: %w", c, vertexCount, ErrMalformedFaces)
		}
		if a == b || b == d || d == a {
			return fmt.Errorf("cell %d is degenerate (%d,%d,%d): %w", c, a, b, d, ErrMalformedFaces)
		}
	}

	s := scanEdges(faces)
	for e, n := range s.seen {
		if n != 2 {
			return fmt.Errorf("edge %d (%d,%d) borders %d cells, want 2: %w",
				e, s.pairs[e][0], s.pairs[e][1], n, ErrNonManifold)
		}
	}

	incident := make([]bool, vertexCount)
	for _, pair := range s.pairs {
		incident[pair[0]] = true
		incident[pair[1]] = true
	}
	for v, ok := range incident {
		if !ok {
			return fmt.Errorf("vertex %d: %w", v, ErrIsolatedVertex)
		}
	}

	return nil
}
