// SPDX-License-Identifier: MIT
// Package ratmat — Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking,
//     and At returns a copy so callers can never alias internal storage.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package ratmat

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rational values.
// r is rows, c is columns, and data holds r*c reduced *big.Rat entries in
// row-major order. Every entry is non-nil after construction.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, entries never nil
}

// NewDense creates an r×c Dense matrix initialized to exact zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice and zero-valued entries.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate the flat slice and materialize a zero Rat per cell
	// (big.Rat has no usable shared zero; entries must be independent).
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	// Return initialized Dense.
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// The copy keeps internal storage unaliased: mutating the result never
// touches the matrix.
// Complexity: O(1) plus the copy of one rational.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	// Compute flat index or error.
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	// Return a defensive copy of the stored value.
	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf; reject nil v.
// Stage 2 (Execute): copy v into the backing entry (stays reduced).
// Complexity: O(1) plus the copy of one rational.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	// Compute flat index or error.
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Reject nil input explicitly; storing nil would break the non-nil invariant.
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	// Copy the value in; the caller keeps ownership of v.
	m.data[idx].Set(v)

	return nil
}

// AddAt accumulates v into the entry at (row, col): m[row][col] += v.
// Read-modify-write in one call; the operator builder sums many binomial
// terms per cell and must not pay At/Set copy round-trips per term.
// Complexity: O(1) plus one exact addition.
func (m *Dense) AddAt(row, col int, v *big.Rat) error {
	// Compute flat index or error.
	idx, err := m.indexOf("AddAt", row, col)
	if err != nil {
		return err
	}
	// Reject nil input explicitly.
	if v == nil {
		return denseErrorf("AddAt", row, col, ErrNilEntry)
	}
	// Accumulate exactly; the entry stays reduced.
	m.data[idx].Add(m.data[idx], v)

	return nil
}

// at returns the live entry pointer for in-package kernels.
// Callers inside the package own the aliasing discipline; the public surface
// never exposes these pointers.
func (m *Dense) at(row, col int) *big.Rat {
	return m.data[row*m.c+col]
}

// swapRows exchanges rows i and j in place (pointer swaps, no value copies).
// Internal helper for elimination.
// Complexity: O(c).
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	base1, base2 := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[base1+k], m.data[base2+k] = m.data[base2+k], m.data[base1+k]
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate a new slice and copy every rational by value.
	copyData := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		copyData[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Entries are rendered via RatString ("p/q", or "p" when q == 1).
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ { // iterate over columns
			sb.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
