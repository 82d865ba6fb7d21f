package sparse

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for sparse matrix construction and arithmetic.
var (
	// ErrBadDims indicates non-positive matrix dimensions.
	ErrBadDims = errors.New("sparse: matrix dimensions must be positive")

	// ErrEntryRange indicates a triplet outside the declared dimensions.
	ErrEntryRange = errors.New("sparse: entry outside matrix dimensions")

	// ErrDimensionMismatch indicates incompatible shapes in an operation.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// COO is a mutable triplet accumulator. Triplets may arrive in any order;
// duplicates are summed during ToCSR.
type COO struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	vals       []int
}

// NewCOO returns an empty rows×cols triplet accumulator.
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%d×%d: %w", rows, cols, ErrBadDims)
	}
	return &COO{rows: rows, cols: cols}, nil
}

// Add records one triplet. Zero values are kept until ToCSR merges them out.
// Time: amortized O(1).
func (c *COO) Add(row, col, v int) {
	c.rowIdx = append(c.rowIdx, row)
	c.colIdx = append(c.colIdx, col)
	c.vals = append(c.vals, v)
}

// ToCSR compresses the triplets: sort by (row, col), sum duplicates, drop
// zero sums. Returns ErrEntryRange if any triplet lies outside the matrix.
// Time: O(nnz log nnz).
func (c *COO) ToCSR() (*Matrix, error) {
	for i := range c.rowIdx {
		if c.rowIdx[i] < 0 || c.rowIdx[i] >= c.rows || c.colIdx[i] < 0 || c.colIdx[i] >= c.cols {
			return nil, fmt.Errorf("entry (%d,%d) in %d×%d: %w",
				c.rowIdx[i], c.colIdx[i], c.rows, c.cols, ErrEntryRange)
		}
	}

	order := make([]int, len(c.vals))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if c.rowIdx[i] != c.rowIdx[j] {
			return c.rowIdx[i] < c.rowIdx[j]
		}
		return c.colIdx[i] < c.colIdx[j]
	})

	m := &Matrix{
		rows:   c.rows,
		cols:   c.cols,
		rowPtr: make([]int, c.rows+1),
		colIdx: make([]int, 0, len(c.vals)),
		vals:   make([]int, 0, len(c.vals)),
	}

	for k := 0; k < len(order); {
		i := order[k]
		row, col := c.rowIdx[i], c.colIdx[i]
		sum := 0
		for ; k < len(order); k++ {
			j := order[k]
			if c.rowIdx[j] != row || c.colIdx[j] != col {
				break
			}
			sum += c.vals[j]
		}
		if sum != 0 {
			m.colIdx = append(m.colIdx, col)
			m.vals = append(m.vals, sum)
			m.rowPtr[row+1]++
		}
	}
	for i := 0; i < c.rows; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m, nil
}

// Matrix is an immutable integer CSR matrix. Column indices within each row
// are strictly increasing.
type Matrix struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	vals       []int
}

// Dims returns (rows, cols). Time: O(1).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// NonZeros returns the number of stored entries. Time: O(1).
func (m *Matrix) NonZeros() int { return len(m.vals) }

// Row returns row i's column indices and values as read-only views.
// Time: O(1).
func (m *Matrix) Row(i int) (cols, vals []int) {
	return m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]], m.vals[m.rowPtr[i]:m.rowPtr[i+1]]
}

// At returns the entry at (i, j), zero when absent.
// Time: O(log nnz(row i)).
func (m *Matrix) At(i, j int) int {
	cols, vals := m.Row(i)
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return vals[k]
	}
	return 0
}

// Mul returns m·b. Returns ErrDimensionMismatch unless m.cols == b.rows.
// Time: O(Σ_i Σ_{k∈row i} nnz(b row k)) with an O(b.cols) scratch row.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("%d×%d · %d×%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	out := &Matrix{
		rows:   m.rows,
		cols:   b.cols,
		rowPtr: make([]int, m.rows+1),
	}
	scratch := make([]int, b.cols)
	touched := make([]int, 0, b.cols)

	for i := 0; i < m.rows; i++ {
		aCols, aVals := m.Row(i)
		for t, k := range aCols {
			bCols, bVals := b.Row(k)
			for u, j := range bCols {
				if scratch[j] == 0 {
					touched = append(touched, j)
				}
				scratch[j] += aVals[t] * bVals[u]
			}
		}

		sort.Ints(touched)
		for _, j := range touched {
			if scratch[j] != 0 {
				out.colIdx = append(out.colIdx, j)
				out.vals = append(out.vals, scratch[j])
			}
			scratch[j] = 0
		}
		out.rowPtr[i+1] = len(out.vals)
		touched = touched[:0]
	}

	return out, nil
}

// RowSums returns the sum of each row's entries. Time: O(rows + nnz).
func (m *Matrix) RowSums() []int {
	sums := make([]int, m.rows)
	for i := 0; i < m.rows; i++ {
		_, vals := m.Row(i)
		for _, v := range vals {
			sums[i] += v
		}
	}
	return sums
}

// MaxAbs returns the largest absolute entry value (0 for an empty matrix).
// Time: O(nnz).
func (m *Matrix) MaxAbs() int {
	best := 0
	for _, v := range m.vals {
		if v < 0 {
			v = -v
		}
		if v > best {
			best = v
		}
	}
	return best
}

// Dense exports the matrix as a gonum dense matrix for numeric collaborators.
// Time: O(rows·cols).
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			d.Set(i, j, float64(vals[k]))
		}
	}
	return d
}
