// Input validation shared by every entry point.
//
// All checks run before any allocation so that an invalid call never
// produces a partial result:
//  1. every element is non-negative (ErrInvalidInput);
//  2. the running total fits into int (ErrOverflow);
//  3. the storage implied by the memory mode fits the cell budget, which is
//     never larger than maxAllocCells whatever WithMaxCells says (ErrOverflow).

package partition

import (
	"fmt"
	"math"
)

// maxAllocCells is the hard ceiling on any table or row, independent of
// WithMaxCells. Beyond it make would panic or exhaust memory.
const maxAllocCells = math.MaxInt32

// sumElements returns the total of elements or the first violation.
// Complexity: O(n).
func sumElements(elements []int) (int, error) {
	var total int
	for i, x := range elements {
		if x < 0 {
			return 0, fmt.Errorf("element %d = %d: %w", i, x, ErrInvalidInput)
		}
		// total + x > MaxInt  ⇔  x > MaxInt - total (both non-negative)
		if x > math.MaxInt-total {
			return 0, fmt.Errorf("sum overflows at element %d: %w", i, ErrOverflow)
		}
		total += x
	}

	return total, nil
}

// checkBudget verifies that rows×cols cells fit into maxCells without
// computing the product (which may itself overflow).
// Complexity: O(1).
func checkBudget(rows, cols, maxCells int) error {
	if rows > maxCells/cols {
		return fmt.Errorf("table %d×%d exceeds %d cells: %w", rows, cols, maxCells, ErrOverflow)
	}

	return nil
}

// validate runs the full sequence (elements → total → budget) for the
// given options and returns the total.
func validate(elements []int, o Options) (int, error) {
	total, err := sumElements(elements)
	if err != nil {
		return 0, err
	}

	rows := 1 + total/2
	cols := len(elements) + 1
	if o.mode == RollingRow {
		cols = 1 // a single row of sums
	}
	if err = checkBudget(rows, cols, min(o.maxCells, maxAllocCells)); err != nil {
		return 0, err
	}

	return total, nil
}
