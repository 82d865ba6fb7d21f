package frames_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/icogrid/adjacency"
	"github.com/katalvlaran/icogrid/frames"
	"github.com/katalvlaran/icogrid/icosphere"
	"gonum.org/v1/gonum/spatial/r3"
)

// buildLevel returns the mesh plus the unsorted Vertex→Edge and Edge→Vertex
// relations at the given subdivision level.
func buildLevel(t *testing.T, level int) (*icosphere.Mesh, *adjacency.CSR[adjacency.VertexEdge], *adjacency.CSR[adjacency.EdgeVertex]) {
	t.Helper()
	m, err := icosphere.New(level)
	if err != nil {
		t.Fatalf("icosphere.New(%d) error: %v", level, err)
	}
	return m, adjacency.NewVertexEdge(m.Faces, m.VertexCount()), adjacency.NewEdgeVertex(m.Faces)
}

// TestSort_Errors verifies dimension validation.
func TestSort_Errors(t *testing.T) {
	m, ve, ev := buildLevel(t, 0)
	if _, err := frames.Sort(ve, ev, m.Points[:4]); !errors.Is(err, frames.ErrDimensionMismatch) {
		t.Errorf("Sort with short points error = %v; want ErrDimensionMismatch", err)
	}
}

// TestSort_Permutation verifies each sorted row is a permutation of the
// unsorted row.
func TestSort_Permutation(t *testing.T) {
	m, ve, ev := buildLevel(t, 2)
	sorted, err := frames.Sort(ve, ev, m.Points)
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	for v := 0; v < ve.Len(); v++ {
		before := ve.Neighbors(v)
		after := sorted.Neighbors(v)
		if len(before) != len(after) {
			t.Fatalf("vertex %d: degree changed %d → %d", v, len(before), len(after))
		}
		set := make(map[uint32]bool, len(before))
		for _, e := range before {
			set[e] = true
		}
		for _, e := range after {
			if !set[e] {
				t.Fatalf("vertex %d: sorted row gained edge %d", v, e)
			}
			delete(set, e)
		}
	}
}

// TestSort_AscendingAngles recomputes tangent-plane angles for non-pole
// vertices and verifies the sorted rows are strictly increasing.
func TestSort_AscendingAngles(t *testing.T) {
	m, ve, ev := buildLevel(t, 1)
	sorted, err := frames.Sort(ve, ev, m.Points)
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}

	up := r3.Vec{Y: 1}
	for v := 0; v < sorted.Len(); v++ {
		normal := r3.Unit(m.Points[v])
		westRaw := r3.Cross(normal, up)
		if r3.Norm(westRaw) < frames.PoleTolerance {
			continue // pole rows use a borrowed frame; order checked via permutation test
		}
		west := r3.Unit(westRaw)
		north := r3.Unit(r3.Cross(west, normal))

		prev := math.Inf(-1)
		for _, e := range sorted.Neighbors(v) {
			pair := ev.Neighbors(int(e))
			other := pair[0]
			if other == uint32(v) {
				other = pair[1]
			}
			dir := r3.Sub(m.Points[other], m.Points[v])
			angle := math.Atan2(r3.Dot(dir, north), r3.Dot(dir, west))
			if angle <= prev {
				t.Fatalf("vertex %d: angles not strictly increasing (%g after %g)", v, angle, prev)
			}
			prev = angle
		}
	}
}

// TestSort_PoleVertices verifies the ±Y poles take the borrowed-frame path
// without error and keep their full fan.
func TestSort_PoleVertices(t *testing.T) {
	m, ve, ev := buildLevel(t, 1)
	sorted, err := frames.Sort(ve, ev, m.Points)
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	for _, pole := range []int{0, 11} {
		if d := sorted.Degree(pole); d != 5 {
			t.Errorf("pole %d: degree = %d; want 5", pole, d)
		}
	}
}

// TestAngleOffsets_Range verifies one offset per vertex, each in [−π, π].
func TestAngleOffsets_Range(t *testing.T) {
	m, ve, ev := buildLevel(t, 2)
	sorted, err := frames.Sort(ve, ev, m.Points)
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	offsets, err := frames.AngleOffsets(sorted, ev, m.Points)
	if err != nil {
		t.Fatalf("AngleOffsets error: %v", err)
	}
	if len(offsets) != m.VertexCount() {
		t.Fatalf("len(offsets) = %d; want %d", len(offsets), m.VertexCount())
	}
	for v, a := range offsets {
		if math.IsNaN(a) || a < -math.Pi || a > math.Pi {
			t.Fatalf("vertex %d: offset %g out of range", v, a)
		}
	}
}

// TestAngleOffsets_FirstEdgeConvention verifies the offset of a non-pole
// vertex really is the angle of its first sorted edge.
func TestAngleOffsets_FirstEdgeConvention(t *testing.T) {
	m, ve, ev := buildLevel(t, 0)
	sorted, err := frames.Sort(ve, ev, m.Points)
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	offsets, err := frames.AngleOffsets(sorted, ev, m.Points)
	if err != nil {
		t.Fatalf("AngleOffsets error: %v", err)
	}

	up := r3.Vec{Y: 1}
	for v := 0; v < sorted.Len(); v++ {
		normal := r3.Unit(m.Points[v])
		westRaw := r3.Cross(normal, up)
		if r3.Norm(westRaw) < frames.PoleTolerance {
			continue
		}
		west := r3.Unit(westRaw)
		north := r3.Unit(r3.Cross(west, normal))

		e := sorted.Neighbors(v)[0]
		pair := ev.Neighbors(int(e))
		other := pair[0]
		if other == uint32(v) {
			other = pair[1]
		}
		dir := r3.Unit(r3.Sub(m.Points[other], m.Points[v]))
		dirT := r3.Unit(r3.Sub(dir, r3.Scale(r3.Dot(dir, normal), normal)))
		want := math.Atan2(r3.Dot(dirT, north), r3.Dot(dirT, west))

		if math.Abs(offsets[v]-want) > 1e-12 {
			t.Fatalf("vertex %d: offset %g; want %g", v, offsets[v], want)
		}
	}
}
