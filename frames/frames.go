package frames

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/icogrid/adjacency"
	"gonum.org/v1/gonum/spatial/r3"
)

// PoleTolerance is the threshold on |normal × up| below which a vertex is
// treated as a pole and its frame is borrowed from a neighbor instead of the
// degenerate local basis.
const PoleTolerance = 0.05

// Sentinel errors for frame construction.
var (
	// ErrDimensionMismatch indicates the points slice does not cover the
	// relation's vertex domain.
	ErrDimensionMismatch = errors.New("frames: points length must match vertex count")

	// ErrEmptyVertex indicates a vertex with no incident edges.
	ErrEmptyVertex = errors.New("frames: vertex has no incident edges")

	// ErrDegenerateFrame indicates a pole vertex whose borrowed neighbor is
	// itself a pole, leaving no usable basis.
	ErrDegenerateFrame = errors.New("frames: no non-pole neighbor to borrow a frame from")
)

// up is the global axis the west/north basis is anchored to.
var up = r3.Vec{Y: 1}

// frame is an orthonormal in-plane basis at a vertex.
type frame struct {
	west, north r3.Vec
}

// tangentFrame builds the west/north basis at a unit normal. The second
// return is false when the normal is numerically parallel to up.
func tangentFrame(normal r3.Vec) (frame, bool) {
	westRaw := r3.Cross(normal, up)
	if r3.Norm(westRaw) < PoleTolerance {
		return frame{}, false
	}
	west := r3.Unit(westRaw)
	north := r3.Unit(r3.Cross(west, normal))

	return frame{west: west, north: north}, true
}

// tangentProject removes v's component along the unit normal.
func tangentProject(v, normal r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(r3.Dot(v, normal), normal))
}

// transport carries a neighbor's basis onto the tangent plane at normal:
// project each basis vector and re-normalize.
func transport(f frame, normal r3.Vec) frame {
	return frame{
		west:  r3.Unit(tangentProject(f.west, normal)),
		north: r3.Unit(tangentProject(f.north, normal)),
	}
}

// otherEndpoint returns edge e's endpoint that is not v.
func otherEndpoint(ev *adjacency.CSR[adjacency.EdgeVertex], e uint32, v uint32) uint32 {
	pair := ev.Neighbors(int(e))
	if pair[0] == v {
		return pair[1]
	}
	return pair[0]
}

// borrowedFrame builds a pole vertex's frame from the other endpoint of its
// first incident edge, transported onto the pole's tangent plane.
func borrowedFrame(v int, row []uint32, ev *adjacency.CSR[adjacency.EdgeVertex], points []r3.Vec, normal r3.Vec) (frame, error) {
	neighbor := otherEndpoint(ev, row[0], uint32(v))
	nf, ok := tangentFrame(r3.Unit(points[neighbor]))
	if !ok {
		return frame{}, fmt.Errorf("pole vertex %d, neighbor %d: %w", v, neighbor, ErrDegenerateFrame)
	}
	return transport(nf, normal), nil
}

// Sort returns a fresh Vertex→Edge relation in which every row is re-ordered
// by ascending tangent-plane angle around its vertex. The input relation is
// left untouched. Row order within ties (never hit on a real icosphere) is
// stable by edge id.
// Time: O(Σ deg·log deg).
func Sort(ve *adjacency.CSR[adjacency.VertexEdge], ev *adjacency.CSR[adjacency.EdgeVertex], points []r3.Vec) (*adjacency.CSR[adjacency.VertexEdge], error) {
	if ve.Len() != len(points) {
		return nil, fmt.Errorf("%d vertices, %d points: %w", ve.Len(), len(points), ErrDimensionMismatch)
	}

	offsets := ve.Offsets()
	indices := make([]uint32, len(ve.Indices()))

	type edgeAngle struct {
		id    uint32
		angle float64
	}

	for v := 0; v < ve.Len(); v++ {
		row := ve.Neighbors(v)
		if len(row) == 0 {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrEmptyVertex)
		}

		normal := r3.Unit(points[v])
		f, ok := tangentFrame(normal)
		if !ok {
			var err error
			if f, err = borrowedFrame(v, row, ev, points, normal); err != nil {
				return nil, err
			}
		}

		angles := make([]edgeAngle, len(row))
		for i, e := range row {
			other := otherEndpoint(ev, e, uint32(v))
			// west/north are orthogonal to normal, so projecting dir onto the
			// tangent plane before the dot products would change nothing.
			dir := r3.Sub(points[other], points[v])
			angles[i] = edgeAngle{
				id:    e,
				angle: math.Atan2(r3.Dot(dir, f.north), r3.Dot(dir, f.west)),
			}
		}
		sort.SliceStable(angles, func(i, j int) bool { return angles[i].angle < angles[j].angle })

		out := indices[offsets[v]:offsets[v+1]]
		for i, ea := range angles {
			out[i] = ea.id
		}
	}

	return adjacency.FromRaw[adjacency.VertexEdge](offsets, indices)
}

// AngleOffsets computes the per-vertex reference angle: the tangent-plane
// angle of the first edge of the (already angularly sorted) Vertex→Edge row,
// measured in the vertex's west/north frame. General vertices are handled
// first; pole vertices are patched afterward with a borrowed, transported
// frame, per the same first-edge convention.
// Time: O(V).
func AngleOffsets(sorted *adjacency.CSR[adjacency.VertexEdge], ev *adjacency.CSR[adjacency.EdgeVertex], points []r3.Vec) ([]float64, error) {
	if sorted.Len() != len(points) {
		return nil, fmt.Errorf("%d vertices, %d points: %w", sorted.Len(), len(points), ErrDimensionMismatch)
	}

	offsets := make([]float64, sorted.Len())
	var poles []int

	for v := 0; v < sorted.Len(); v++ {
		row := sorted.Neighbors(v)
		if len(row) == 0 {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrEmptyVertex)
		}

		normal := r3.Unit(points[v])
		f, ok := tangentFrame(normal)
		if !ok {
			poles = append(poles, v)
			continue
		}
		offsets[v] = firstEdgeAngle(v, row, ev, points, normal, f)
	}

	for _, v := range poles {
		row := sorted.Neighbors(v)
		normal := r3.Unit(points[v])
		f, err := borrowedFrame(v, row, ev, points, normal)
		if err != nil {
			return nil, err
		}
		offsets[v] = firstEdgeAngle(v, row, ev, points, normal, f)
	}

	return offsets, nil
}

// firstEdgeAngle measures the angle of the first sorted edge's tangent-plane
// direction in the given frame.
func firstEdgeAngle(v int, row []uint32, ev *adjacency.CSR[adjacency.EdgeVertex], points []r3.Vec, normal r3.Vec, f frame) float64 {
	other := otherEndpoint(ev, row[0], uint32(v))
	dir := r3.Unit(r3.Sub(points[other], points[v]))
	dirT := r3.Unit(tangentProject(dir, normal))

	return math.Atan2(r3.Dot(dirT, f.north), r3.Dot(dirT, f.west))
}
