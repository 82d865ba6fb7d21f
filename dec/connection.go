package dec

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/icogrid/sparse"
)

// Sentinel errors for the trivial-connection formulation.
var (
	// ErrDuplicateSingularity indicates the same vertex id was prescribed twice.
	ErrDuplicateSingularity = errors.New("dec: duplicate singularity vertex")

	// ErrSingularityRange indicates a prescribed vertex id outside [0, V).
	ErrSingularityRange = errors.New("dec: singularity vertex out of range")

	// ErrSolverUnimplemented indicates the trivial-connection linear solve,
	// which is a deliberate, currently-absent extension point.
	ErrSolverUnimplemented = errors.New("dec: trivial-connection solver not implemented")
)

// Singularity prescribes an integer winding index at a vertex for the
// trivial-connection problem.
type Singularity struct {
	Vertex int
	Index  int
}

// TrivialConnectionRHS assembles the right-hand side of the Poisson-type
// trivial-connection system: the negative of per-vertex curvature, with
// 2π·index added at each singular vertex. When the prescribed indices sum to
// 2 (the Euler characteristic of the sphere), the entries sum to zero by
// Gauss–Bonnet. Vertex ids must be unique and in range.
// Time: O(V + len(singularities)).
func TrivialConnectionRHS(curvature []float64, singularities []Singularity) ([]float64, error) {
	rhs := make([]float64, len(curvature))
	for v, k := range curvature {
		rhs[v] = -k
	}

	seen := make(map[int]bool, len(singularities))
	for _, s := range singularities {
		if s.Vertex < 0 || s.Vertex >= len(curvature) {
			return nil, fmt.Errorf("vertex %d of %d: %w", s.Vertex, len(curvature), ErrSingularityRange)
		}
		if seen[s.Vertex] {
			return nil, fmt.Errorf("vertex %d: %w", s.Vertex, ErrDuplicateSingularity)
		}
		seen[s.Vertex] = true
		rhs[s.Vertex] += 2 * math.Pi * float64(s.Index)
	}

	return rhs, nil
}

// SolveTrivialConnection is the unfinished extension point: the system is
// formulated (d0, d1, rhs) but no solver, factorization, or result vector is
// produced. It always returns ErrSolverUnimplemented.
func SolveTrivialConnection(d0, d1 *sparse.Matrix, rhs []float64) ([]float64, error) {
	return nil, ErrSolverUnimplemented
}
