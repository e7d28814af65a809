package partition

// Partition — maximum half-sum via subset-sum DP
//
// Description:
//
//	For a multiset of non-negative integers, find the largest subset sum
//	that does not exceed half of the total. The complement group then
//	carries the rest, and the difference between the two groups is the
//	smallest possible.
//
// Algorithm Outline (FullTable):
//  1. total = Σ elements. Allocate (1+total/2)×(n+1) boolean grid D.
//  2. Initialize: D[0][j] = true for all j; everything else false.
//  3. For s = 1..total/2:
//     For j = 1..n:
//     x = elements[j-1]
//     D[s][j] = D[s][j-1] || (s ≥ x && D[s-x][j-1])
//  4. Answer = max s with D[s][n] = true (scan from total/2 down).
//
// RollingRow keeps one row R[0..total/2] with R[0] = true and, for every
// element x, sets R[s] |= R[s-x] for s = total/2 down to x. Visiting sums
// from high to low keeps each element used at most once.
//
// Complexity:
//
//	Time   = O(total·n)
//	Memory = O(total·n) (FullTable) or O(total) (RollingRow)
//
// Errors:
//   - ErrInvalidInput — a negative element.
//   - ErrOverflow     — total overflows int, or the storage exceeds WithMaxCells.

// MaxHalfSum returns the largest s, 0 ≤ s ≤ floor(total/2), such that some
// subset of elements sums exactly to s. An empty slice yields 0.
// The input slice is not modified.
//
// Example:
//
//	best, err := MaxHalfSum([]int{1, 2, 5})              // 3
//	best, err = MaxHalfSum(big, WithMemoryMode(RollingRow)) // O(total) memory
func MaxHalfSum(elements []int, opts ...Option) (int, error) {
	o := gatherOptions(opts...)

	total, err := validate(elements, o)
	if err != nil {
		return 0, err
	}

	if o.mode == RollingRow {
		return rollingMaxSum(elements, total), nil
	}

	t := newTable(elements, total)
	t.fill()

	return t.MaxSum(), nil
}

// BuildTable validates elements, allocates the reachability table and fills
// it. The result backs Subset, Split and Render.
// Returns ErrTableNeedsFullMode when RollingRow is requested.
func BuildTable(elements []int, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if o.mode != FullTable {
		return nil, ErrTableNeedsFullMode
	}

	total, err := validate(elements, o)
	if err != nil {
		return nil, err
	}

	t := newTable(elements, total)
	t.fill()

	return t, nil
}

// rollingMaxSum is the single-row variant of fill + MaxSum.
// Complexity: O(total·n) time, O(total) memory.
func rollingMaxSum(elements []int, total int) int {
	half := total / 2
	row := make([]bool, half+1)
	row[0] = true

	var s int
	for _, x := range elements {
		if x == 0 || x > half {
			continue // zero adds nothing; x > half never fits
		}
		for s = half; s >= x; s-- {
			if !row[s] && row[s-x] {
				row[s] = true
			}
		}
	}

	for s = half; s > 0; s-- {
		if row[s] {
			return s
		}
	}

	return 0
}
