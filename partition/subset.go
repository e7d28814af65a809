package partition

// Subset walks the filled table back from (MaxSum(), n) to (0, 0) and
// returns the ascending indices of one subset that sums to MaxSum().
//
// At column j the walker keeps sum s unchanged when cell(s, j-1) holds
// (element j-1 is not needed); otherwise the recurrence guarantees
// cell(s-x, j-1), so element j-1 is taken and s drops by x.
// Zero-valued elements are never taken.
//
// Complexity: O(n) time, O(n) memory.
func (t *Table) Subset() ([]int, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	s := t.MaxSum()
	picked := make([]int, 0, len(t.elements))
	for j := t.cols - 1; j > 0 && s > 0; j-- {
		if t.at(s, j-1) {
			continue
		}
		picked = append(picked, j-1)
		s -= t.elements[j-1]
	}

	// reverse in place to ascending index order
	for l, r := 0, len(picked)-1; l < r; l, r = l+1, r-1 {
		picked[l], picked[r] = picked[r], picked[l]
	}

	return picked, nil
}

// Split computes the best two-way partition of elements.
// Requires FullTable mode.
//
// Example:
//
//	p, _ := Split([]int{1, 2, 5})
//	// p.Smaller = [0 1], p.Larger = [2], p.SmallerSum = 3, p.LargerSum = 5, p.Diff = 2
func Split(elements []int, opts ...Option) (Partition, error) {
	t, err := BuildTable(elements, opts...)
	if err != nil {
		return Partition{}, err
	}

	return t.Split()
}

// Split derives the partition from an already filled table. The smaller
// group is the subset recovered by Subset; the larger group holds every
// remaining index.
func (t *Table) Split() (Partition, error) {
	smaller, err := t.Subset()
	if err != nil {
		return Partition{}, err
	}

	p := Partition{
		Smaller: smaller,
		Larger:  make([]int, 0, len(t.elements)-len(smaller)),
	}
	k := 0
	for i, x := range t.elements {
		if k < len(smaller) && smaller[k] == i {
			p.SmallerSum += x
			k++
			continue
		}
		p.Larger = append(p.Larger, i)
		p.LargerSum += x
	}
	p.Diff = p.LargerSum - p.SmallerSum

	return p, nil
}
