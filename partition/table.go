// SPDX-License-Identifier: MIT

package partition

import "fmt"

// Table is the filled reachability grid of one input.
//
// Cell (s, j) is true iff some subset of the first j elements sums to s,
// for 0 ≤ s ≤ floor(total/2) and 0 ≤ j ≤ n. Storage is a flat row-major
// slice. A Table is immutable after BuildTable returns and is safe for
// concurrent reads.
type Table struct {
	rows, cols int    // 1+total/2 and n+1
	total      int    // sum of all elements
	elements   []int  // private copy of the input
	cells      []bool // len == rows*cols, row-major
}

// tableErrorf wraps err with accessor context.
func tableErrorf(method string, sum, prefix int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, sum, prefix, err)
}

// newTable allocates the grid and seeds row 0.
// Stage 1 (Prepare): copy elements, size the grid.
// Stage 2 (Seed): row s=0 is true in every column.
// Column 0 needs nothing else: without elements only sum 0 is reachable,
// and the zero value of bool is false.
// Complexity: O(total·n) memory.
func newTable(elements []int, total int) *Table {
	n := len(elements)
	t := &Table{
		rows:     1 + total/2,
		cols:     n + 1,
		total:    total,
		elements: append([]int(nil), elements...),
	}
	t.cells = make([]bool, t.rows*t.cols)
	for j := 0; j < t.cols; j++ {
		t.cells[j] = true // row 0 starts at offset 0
	}

	return t
}

// fill applies the recurrence row by row, left to right:
//
//	x = elements[j-1]
//	cell(s, j) = cell(s, j-1) || (s ≥ x && cell(s-x, j-1))
//
// Every read targets column j-1 of a row ≤ s, already final under this
// traversal order.
// Complexity: O(total·n) time.
func (t *Table) fill() {
	var s, j, x int
	for s = 1; s < t.rows; s++ {
		row := s * t.cols
		for j = 1; j < t.cols; j++ {
			x = t.elements[j-1]
			// carry forward: reachable without the new element
			t.cells[row+j] = t.cells[row+j-1]
			// include the new element: s-x must be reachable from the prefix
			if !t.cells[row+j] && s-x >= 0 {
				t.cells[row+j] = t.cells[(s-x)*t.cols+j-1]
			}
		}
	}
}

// MaxSum scans the last column from floor(total/2) down and returns the
// first reachable sum. Row 0 is always true, so the scan terminates.
// Complexity: O(total).
func (t *Table) MaxSum() int {
	last := t.cols - 1
	for s := t.rows - 1; s > 0; s-- {
		if t.cells[s*t.cols+last] {
			return s
		}
	}

	return 0
}

// Reachable reports cell (sum, prefix).
// Returns ErrOutOfRange if sum ∉ [0, HalfSum()] or prefix ∉ [0, len(elements)].
// Complexity: O(1).
func (t *Table) Reachable(sum, prefix int) (bool, error) {
	if t == nil {
		return false, ErrNilTable
	}
	if sum < 0 || sum >= t.rows || prefix < 0 || prefix >= t.cols {
		return false, tableErrorf("Reachable", sum, prefix, ErrOutOfRange)
	}

	return t.cells[sum*t.cols+prefix], nil
}

// at is the unchecked accessor used by internal walkers.
func (t *Table) at(sum, prefix int) bool {
	return t.cells[sum*t.cols+prefix]
}

// Rows returns 1 + floor(total/2).
func (t *Table) Rows() int { return t.rows }

// Cols returns n + 1.
func (t *Table) Cols() int { return t.cols }

// Total returns the sum of all elements.
func (t *Table) Total() int { return t.total }

// HalfSum returns floor(total/2), the highest row index.
func (t *Table) HalfSum() int { return t.rows - 1 }

// Elements returns a copy of the input the table was built from.
func (t *Table) Elements() []int {
	return append([]int(nil), t.elements...)
}
