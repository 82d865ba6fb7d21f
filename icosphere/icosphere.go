package icosphere

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNegativeSubdivision indicates a negative subdivision level was requested.
var ErrNegativeSubdivision = errors.New("icosphere: subdivision level must be non-negative")

// Mesh is a subdivided icosahedral triangulation of the unit sphere.
// It is immutable once built; callers must not mutate the exposed slices.
//
// Points holds one unit-length position per vertex. Faces is the flat
// triangle-vertex index list: Faces[3c], Faces[3c+1], Faces[3c+2] are the
// vertex ids of cell c, in a fixed outward (counter-clockwise from outside)
// winding order.
type Mesh struct {
	Points []r3.Vec
	Faces  []uint32
}

// VertexCount returns the number of vertices. Time: O(1).
func (m *Mesh) VertexCount() int { return len(m.Points) }

// CellCount returns the number of triangular cells. Time: O(1).
func (m *Mesh) CellCount() int { return len(m.Faces) / 3 }

// New builds the level-k icosphere: the canonical icosahedron followed by k
// rounds of 4-way subdivision, every vertex normalized to the unit sphere.
// Returns ErrNegativeSubdivision for k < 0.
// Time: O(4^k); Memory: O(4^k).
func New(subdivisions int) (*Mesh, error) {
	if subdivisions < 0 {
		return nil, ErrNegativeSubdivision
	}

	m := baseIcosahedron()
	for i := 0; i < subdivisions; i++ {
		m = subdivide(m)
	}

	return m, nil
}

// baseIcosahedron returns the canonical 12-vertex icosahedron with poles on
// ±Y: vertex 0 is the north pole, vertices 1..5 the upper pentagonal ring,
// 6..10 the lower ring (rotated half a step), vertex 11 the south pole.
func baseIcosahedron() *Mesh {
	const (
		ringY = 0.4472135954999579  // 1/√5, latitude of both rings
		ringR = 0.8944271909999159  // 2/√5, ring radius
		step  = 2 * math.Pi / 5     // pentagonal longitude step
		half  = math.Pi / 5         // lower ring phase shift
	)

	points := make([]r3.Vec, 0, 12)
	points = append(points, r3.Vec{X: 0, Y: 1, Z: 0})
	for i := 0; i < 5; i++ {
		lon := step * float64(i)
		points = append(points, r3.Vec{X: ringR * math.Cos(lon), Y: ringY, Z: ringR * math.Sin(lon)})
	}
	for i := 0; i < 5; i++ {
		lon := step*float64(i) + half
		points = append(points, r3.Vec{X: ringR * math.Cos(lon), Y: -ringY, Z: ringR * math.Sin(lon)})
	}
	points = append(points, r3.Vec{X: 0, Y: -1, Z: 0})

	// Four bands of five triangles each: top cap, upper band, lower band,
	// bottom cap. Winding chosen so face normals point outward.
	faces := make([]uint32, 0, 60)
	for i := uint32(0); i < 5; i++ {
		j := (i + 1) % 5
		ui, uj := 1+i, 1+j // upper ring
		li, lj := 6+i, 6+j // lower ring
		faces = append(faces,
			0, uj, ui,
			ui, uj, li,
			uj, lj, li,
			11, li, lj,
		)
	}

	return &Mesh{Points: points, Faces: faces}
}

// subdivide splits every triangle into four, creating one midpoint vertex per
// unique edge. Midpoints are assigned ids in first-sight order over an
// in-order face scan, then projected to the unit sphere.
func subdivide(m *Mesh) *Mesh {
	points := make([]r3.Vec, len(m.Points), len(m.Points)*4)
	copy(points, m.Points)

	midpoints := make(map[[2]uint32]uint32, len(m.Faces))
	midpoint := func(a, b uint32) uint32 {
		key := [2]uint32{min(a, b), max(a, b)}
		if id, ok := midpoints[key]; ok {
			return id
		}
		id := uint32(len(points))
		points = append(points, r3.Unit(r3.Add(m.Points[a], m.Points[b])))
		midpoints[key] = id
		return id
	}

	faces := make([]uint32, 0, len(m.Faces)*4)
	for c := 0; c < len(m.Faces); c += 3 {
		a, b, d := m.Faces[c], m.Faces[c+1], m.Faces[c+2]
		ab := midpoint(a, b)
		bd := midpoint(b, d)
		da := midpoint(d, a)
		faces = append(faces,
			a, ab, da,
			ab, b, bd,
			da, bd, d,
			ab, bd, da,
		)
	}

	return &Mesh{Points: points, Faces: faces}
}
